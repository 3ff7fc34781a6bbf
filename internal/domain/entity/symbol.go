package entity

// Symbol is one row of the ticker reference table that defines the
// universe the jobs iterate over.
type Symbol struct {
	Symbol     string
	Name       string
	Exchange   string
	AssetClass string
	IsActive   bool
}

// Asset is a tradable instrument as reported by the provider's assets
// endpoint, before any universe filtering.
type Asset struct {
	Symbol       string
	Name         string
	Exchange     string
	Class        string
	Tradable     bool
	Marginable   bool
	Fractionable bool
	Active       bool
}
