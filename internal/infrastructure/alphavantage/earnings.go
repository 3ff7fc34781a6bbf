// Package alphavantage fetches the upcoming earnings calendar. The
// endpoint replies with CSV rather than JSON.
package alphavantage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

type Calendar struct {
	cfg    config.Config
	client *http.Client
}

var _ repository.EarningsCalendarRepository = (*Calendar)(nil)

func NewCalendar(cfg config.Config, client *http.Client) *Calendar {
	return &Calendar{cfg: cfg, client: client}
}

// Upcoming returns roughly three months of scheduled earnings reports for
// all symbols.
func (c *Calendar) Upcoming(ctx context.Context) ([]entity.EarningsDate, error) {
	q := url.Values{}
	q.Set("function", "EARNINGS_CALENDAR")
	q.Set("horizon", "3month")
	q.Set("apikey", c.cfg.AlphaVantageAPIKey)

	u := fmt.Sprintf("%s/query?%s", c.cfg.AlphaVantageBaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage earnings: http %d", res.StatusCode)
	}

	return parseCalendar(res.Body)
}

// parseCalendar reads the CSV body: symbol,name,reportDate,... with a
// header row. Rows without a parsable report date are skipped.
func parseCalendar(r io.Reader) ([]entity.EarningsDate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read earnings header: %w", err)
	}

	symbolIdx, dateIdx := -1, -1
	for i, name := range header {
		switch name {
		case "symbol":
			symbolIdx = i
		case "reportDate":
			dateIdx = i
		}
	}
	if symbolIdx < 0 || dateIdx < 0 {
		return nil, fmt.Errorf("earnings csv missing symbol/reportDate columns: %v", header)
	}

	var dates []entity.EarningsDate
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return dates, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read earnings row: %w", err)
		}
		if len(rec) <= symbolIdx || len(rec) <= dateIdx || rec[symbolIdx] == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", rec[dateIdx])
		if err != nil {
			continue
		}
		dates = append(dates, entity.EarningsDate{Symbol: rec[symbolIdx], ReportDate: d})
	}
}
