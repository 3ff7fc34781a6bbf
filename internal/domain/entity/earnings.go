package entity

import "time"

// EarningsDate is one upcoming earnings report. (Symbol, ReportDate) is
// unique; the calendar is refreshed wholesale, so rows are upserted.
type EarningsDate struct {
	Symbol     string
	ReportDate time.Time
}
