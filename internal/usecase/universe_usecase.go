package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"marketdata_sync/internal/domain/entity"
	"marketdata_sync/internal/domain/repository"
)

// UniverseUsecase refreshes the ticker reference table, either from the
// provider's assets endpoint or from a local ticker file.
type UniverseUsecase struct {
	assets  repository.AssetRepository
	symbols repository.SymbolRepository
}

func NewUniverseUsecase(assets repository.AssetRepository, symbols repository.SymbolRepository) *UniverseUsecase {
	return &UniverseUsecase{assets: assets, symbols: symbols}
}

// RefreshFromProvider lists the provider's active assets, applies the
// universe filter and upserts the result. Returns how many symbols were
// written.
func (u *UniverseUsecase) RefreshFromProvider(ctx context.Context) (int, error) {
	assets, err := u.assets.ListActiveAssets(ctx)
	if err != nil {
		return 0, fmt.Errorf("list assets: %w", err)
	}

	selected := FilterUniverse(assets)
	if len(selected) == 0 {
		return 0, nil
	}

	if err := u.symbols.UpsertBatch(ctx, selected); err != nil {
		return 0, fmt.Errorf("upsert symbols: %w", err)
	}
	return len(selected), nil
}

// RefreshFromFile reads tickers from a .csv (symbol column) or plain text
// file and upserts them as active reference rows.
func (u *UniverseUsecase) RefreshFromFile(ctx context.Context, path string) (int, error) {
	codes, err := ReadTickerFile(path)
	if err != nil {
		return 0, err
	}
	if len(codes) == 0 {
		return 0, nil
	}

	symbols := make([]entity.Symbol, 0, len(codes))
	for _, c := range codes {
		symbols = append(symbols, entity.Symbol{
			Symbol:     c,
			AssetClass: "US_EQUITY",
			IsActive:   true,
		})
	}

	if err := u.symbols.UpsertBatch(ctx, symbols); err != nil {
		return 0, fmt.Errorf("upsert symbols: %w", err)
	}
	return len(symbols), nil
}

// FilterUniverse keeps active, tradable, marginable, fractionable NYSE and
// NASDAQ equities, skipping preferred shares (dotted symbols) and
// warrant-like instruments (symbols longer than four characters). The
// result is sorted so runs iterate deterministically.
func FilterUniverse(assets []entity.Asset) []entity.Symbol {
	var out []entity.Symbol
	for _, a := range assets {
		if !a.Active || !a.Tradable || !a.Marginable || !a.Fractionable {
			continue
		}
		if a.Exchange != "NYSE" && a.Exchange != "NASDAQ" {
			continue
		}
		if strings.Contains(a.Symbol, ".") || len(a.Symbol) > 4 || a.Symbol == "" {
			continue
		}
		out = append(out, entity.Symbol{
			Symbol:     a.Symbol,
			Name:       a.Name,
			Exchange:   a.Exchange,
			AssetClass: "US_EQUITY",
			IsActive:   true,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// ReadTickerFile parses a ticker list: a CSV with a symbol column, or a
// plain text file with one ticker per line.
func ReadTickerFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readTickerCSV(f)
	}
	return readTickerLines(f)
}

func readTickerCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ticker csv: %w", err)
	}

	symbolIdx := 0
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "symbol") {
			symbolIdx = i
			break
		}
	}

	var codes []string
	seen := map[string]struct{}{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return codes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ticker csv: %w", err)
		}
		if len(rec) <= symbolIdx {
			continue
		}
		c := strings.ToUpper(strings.TrimSpace(rec[symbolIdx]))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}
}

func readTickerLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ticker file: %w", err)
	}

	var codes []string
	seen := map[string]struct{}{}
	for _, line := range strings.Split(string(data), "\n") {
		c := strings.ToUpper(strings.TrimSpace(line))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}
	return codes, nil
}
