package entity

import (
	"fmt"
	"time"
)

// Timeframe is the bar period granularity, using the provider's wire strings.
type Timeframe string

const (
	TimeframeDay     Timeframe = "1Day"
	Timeframe4Hour   Timeframe = "4Hour"
	TimeframeHour    Timeframe = "1Hour"
	Timeframe15Min   Timeframe = "15Min"
)

// Timeframes is the fixed set the sync and backfill jobs iterate over,
// from the slowest lane to the fastest.
var Timeframes = []Timeframe{TimeframeDay, Timeframe4Hour, TimeframeHour, Timeframe15Min}

// ParseTimeframe validates a timeframe string from configuration.
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range Timeframes {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

// Period returns the duration covered by a single bar.
func (tf Timeframe) Period() time.Duration {
	switch tf {
	case TimeframeDay:
		return 24 * time.Hour
	case Timeframe4Hour:
		return 4 * time.Hour
	case TimeframeHour:
		return time.Hour
	case Timeframe15Min:
		return 15 * time.Minute
	default:
		return 24 * time.Hour
	}
}

// BackfillLookbackDays returns the default historical window for a full
// backfill. Mirrors the provider's availability per plan: roughly full
// history for daily bars, progressively less for intraday lanes.
func (tf Timeframe) BackfillLookbackDays() int {
	switch tf {
	case TimeframeDay:
		return 9000
	case Timeframe4Hour:
		return 730
	case TimeframeHour:
		return 365
	case Timeframe15Min:
		return 180
	default:
		return 365
	}
}

// Retention returns how long bars of this timeframe are kept before the
// maintenance job purges them. ok is false for timeframes kept forever.
func (tf Timeframe) Retention() (d time.Duration, ok bool) {
	const day = 24 * time.Hour
	switch tf {
	case Timeframe15Min:
		return 180 * day, true
	case TimeframeHour:
		return 365 * day, true
	case Timeframe4Hour:
		return 2 * 365 * day, true
	default:
		// Daily bars are never purged.
		return 0, false
	}
}

func (tf Timeframe) String() string {
	return string(tf)
}
