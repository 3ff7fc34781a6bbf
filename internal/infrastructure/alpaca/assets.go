package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"marketdata_sync/internal/config"
	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

// Trading talks to the provider's trading API, which hosts the assets
// listing. It is a separate host from the bar-data API.
type Trading struct {
	cfg    config.Config
	client *http.Client
}

var _ repository.AssetRepository = (*Trading)(nil)

func NewTrading(cfg config.Config, client *http.Client) *Trading {
	return &Trading{cfg: cfg, client: client}
}

// ListActiveAssets returns every active US equity the provider knows about.
// Universe filtering happens in the usecase.
func (t *Trading) ListActiveAssets(ctx context.Context) ([]entity.Asset, error) {
	u := fmt.Sprintf("%s/v2/assets?status=active&asset_class=us_equity", t.cfg.TradingBaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("APCA-API-KEY-ID", t.cfg.AlpacaAPIKey)
	req.Header.Set("APCA-API-SECRET-KEY", t.cfg.AlpacaAPISecret)

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alpaca assets: http %d", res.StatusCode)
	}

	var body []assetDTO
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	assets := make([]entity.Asset, 0, len(body))
	for _, v := range body {
		assets = append(assets, entity.Asset{
			Symbol:       v.Symbol,
			Name:         v.Name,
			Exchange:     v.Exchange,
			Class:        v.Class,
			Tradable:     v.Tradable,
			Marginable:   v.Marginable,
			Fractionable: v.Fractionable,
			Active:       v.Status == "active",
		})
	}
	return assets, nil
}
