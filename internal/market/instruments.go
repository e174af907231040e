package market

// Instrument describes one supported investment type.
type Instrument struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Risk          string `json:"risk"`
	ReturnRange   string `json:"return_range"`
	MinInvestment int    `json:"min_investment"`
}

// Instruments is the catalogue of supported investment types.
func Instruments() []Instrument {
	return []Instrument{
		{ID: "nifty50", Name: "NIFTY 50 Index Fund", Category: "Equity", Risk: "Medium", ReturnRange: "12-14%", MinInvestment: 500},
		{ID: "flexi_mf", Name: "Flexi Cap Mutual Fund", Category: "Equity", Risk: "Medium", ReturnRange: "13-16%", MinInvestment: 500},
		{ID: "smallcap", Name: "Small Cap Fund", Category: "Equity", Risk: "High", ReturnRange: "15-20%", MinInvestment: 500},
		{ID: "sgb", Name: "Sovereign Gold Bond", Category: "Gold", Risk: "Low", ReturnRange: "8-12%", MinInvestment: 5000},
		{ID: "gilt", Name: "Gilt / G-Sec Fund", Category: "Bonds", Risk: "Very Low", ReturnRange: "7-8%", MinInvestment: 500},
		{ID: "reit", Name: "REITs", Category: "Real Estate", Risk: "Medium", ReturnRange: "8-11%", MinInvestment: 300},
		{ID: "invit", Name: "InvITs", Category: "Infrastructure", Risk: "Medium", ReturnRange: "9-12%", MinInvestment: 5000},
		{ID: "p2p", Name: "P2P Lending", Category: "Alternative", Risk: "Medium-High", ReturnRange: "10-14%", MinInvestment: 5000},
		{ID: "us_etf", Name: "US ETFs (S&P 500)", Category: "International Equity", Risk: "Medium-High", ReturnRange: "12-15%", MinInvestment: 100},
		{ID: "crypto", Name: "Crypto (BTC/ETH)", Category: "Crypto", Risk: "Very High", ReturnRange: "Highly variable", MinInvestment: 100},
		{ID: "ppf", Name: "PPF (Public Provident Fund)", Category: "Fixed Income", Risk: "Very Low", ReturnRange: "7.1%", MinInvestment: 500},
		{ID: "nps", Name: "NPS (National Pension System)", Category: "Retirement", Risk: "Low-Medium", ReturnRange: "8-10%", MinInvestment: 500},
		{ID: "fd", Name: "Fixed Deposit", Category: "Fixed Income", Risk: "Very Low", ReturnRange: "6-8%", MinInvestment: 1000},
		{ID: "liquid", Name: "Liquid Fund (Emergency)", Category: "Liquid", Risk: "Very Low", ReturnRange: "4-6%", MinInvestment: 500},
	}
}
