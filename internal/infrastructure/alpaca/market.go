package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

const (
	// pageLimit is the provider's maximum bars per request; larger ranges
	// are drained via next_page_token.
	pageLimit = 10000

	// sipLag keeps requests behind real time to satisfy the free-tier SIP
	// data restriction.
	sipLag = 16 * time.Minute
)

type Market struct {
	cfg    config.Config
	client *http.Client
}

var _ repository.MarketRepository = (*Market)(nil)

func NewMarket(cfg config.Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// SafeNow returns the most recent instant bars may be requested for.
func SafeNow() time.Time {
	return time.Now().UTC().Add(-sipLag)
}

// GetBars fetches all bars for the symbol and timeframe in [start, end],
// oldest first, following pagination until the range is drained.
func (m *Market) GetBars(ctx context.Context, symbol string, tf entity.Timeframe, start, end time.Time) ([]entity.Bar, error) {
	var (
		bars      []entity.Bar
		pageToken string
	)
	for {
		page, next, err := m.getBarsPage(ctx, symbol, tf, start, end, pageToken)
		if err != nil {
			return nil, err
		}
		bars = append(bars, page...)
		if next == "" {
			return bars, nil
		}
		pageToken = next
	}
}

// GetLatestBar returns the most recent bar, or nil when the provider has
// none. Implemented as a short trailing-window query because the provider
// has no per-timeframe latest endpoint: fetch the last few periods and take
// the newest bar.
func (m *Market) GetLatestBar(ctx context.Context, symbol string, tf entity.Timeframe) (*entity.Bar, error) {
	end := SafeNow()
	start := end.Add(-trailingSpan(tf))

	bars, err := m.GetBars(ctx, symbol, tf, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, nil
	}
	last := bars[len(bars)-1]
	return &last, nil
}

// trailingSpan is wide enough to always contain at least one closed bar,
// covering weekends and market holidays for the daily lane.
func trailingSpan(tf entity.Timeframe) time.Duration {
	const day = 24 * time.Hour
	switch tf {
	case entity.TimeframeDay:
		return 5 * day
	case entity.Timeframe4Hour:
		return 3 * day
	default:
		return day
	}
}

func (m *Market) getBarsPage(ctx context.Context, symbol string, tf entity.Timeframe, start, end time.Time, pageToken string) ([]entity.Bar, string, error) {
	q := url.Values{}
	q.Set("timeframe", tf.String())
	q.Set("start", start.UTC().Format(time.RFC3339))
	q.Set("end", end.UTC().Format(time.RFC3339))
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("adjustment", "all")
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}

	u := fmt.Sprintf("%s/v2/stocks/%s/bars?%s", m.cfg.DataBaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("APCA-API-KEY-ID", m.cfg.AlpacaAPIKey)
	req.Header.Set("APCA-API-SECRET-KEY", m.cfg.AlpacaAPISecret)

	res, err := m.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, "", fmt.Errorf("alpaca bars %s %s: http %d", symbol, tf, res.StatusCode)
	}

	var body barsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, "", err
	}

	bars := make([]entity.Bar, 0, len(body.Bars))
	for _, v := range body.Bars {
		b, err := toBar(symbol, tf, v)
		if err != nil {
			return nil, "", err
		}
		bars = append(bars, b)
	}

	next := ""
	if body.NextPageToken != nil {
		next = *body.NextPageToken
	}
	return bars, next, nil
}

func toBar(symbol string, tf entity.Timeframe, v barDTO) (entity.Bar, error) {
	ts, err := time.Parse(time.RFC3339, v.Timestamp)
	if err != nil {
		return entity.Bar{}, fmt.Errorf("parse bar timestamp %q: %w", v.Timestamp, err)
	}

	closePx := decimal.NewFromFloat(v.Close)
	vwap := decimal.NewFromFloat(v.VWAP)
	if v.VWAP == 0 {
		// Some feeds omit vwap; fall back to the close.
		vwap = closePx
	}

	return entity.Bar{
		Symbol:    symbol,
		Timeframe: tf,
		Timestamp: ts.UTC(),
		Open:      decimal.NewFromFloat(v.Open),
		High:      decimal.NewFromFloat(v.High),
		Low:       decimal.NewFromFloat(v.Low),
		Close:     closePx,
		Volume:    int64(v.Volume),
		VWAP:      vwap,
	}, nil
}
