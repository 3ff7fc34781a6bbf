package alpaca

// barDTO is one bar in the provider's native schema.
type barDTO struct {
	Timestamp  string  `json:"t"`
	Open       float64 `json:"o"`
	High       float64 `json:"h"`
	Low        float64 `json:"l"`
	Close      float64 `json:"c"`
	Volume     float64 `json:"v"`
	TradeCount int64   `json:"n"`
	VWAP       float64 `json:"vw"`
}

// barsResponse is the paginated reply of the bars endpoint. Bars is null
// when the window holds no data.
type barsResponse struct {
	Bars          []barDTO `json:"bars"`
	Symbol        string   `json:"symbol"`
	NextPageToken *string  `json:"next_page_token"`
	Message       string   `json:"message"`
}

// assetDTO is one instrument from the assets endpoint.
type assetDTO struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Exchange     string `json:"exchange"`
	Class        string `json:"class"`
	Status       string `json:"status"`
	Tradable     bool   `json:"tradable"`
	Marginable   bool   `json:"marginable"`
	Fractionable bool   `json:"fractionable"`
}
