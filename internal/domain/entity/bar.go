package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one OHLCV record for a symbol at a point in time. Bars are
// immutable once fetched; (Symbol, Timeframe, Timestamp) is the unique key
// the persistence layer upserts on.
type Bar struct {
	Symbol    string
	Timeframe Timeframe
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    int64
	VWAP      decimal.Decimal
}

// SymbolStats summarizes the stored bars of one symbol within a timeframe.
// The catchup job resumes from Latest, the deep backfill extends before
// Earliest.
type SymbolStats struct {
	Symbol   string
	Earliest time.Time
	Latest   time.Time
	Bars     int64
}
