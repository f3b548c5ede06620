package gateway

const (
	DisplayName     = "Bambora"
	HomepageURL     = "http://www.bambora.com/"
	DefaultCurrency = "USD"
)

type Info struct {
	DisplayName        string   `json:"display_name"`
	HomepageURL        string   `json:"homepage_url"`
	DefaultCurrency    string   `json:"default_currency"`
	SupportedCountries []string `json:"supported_countries"`
	SupportedCardTypes []string `json:"supported_card_types"`
	SupportsScrubbing  bool     `json:"supports_scrubbing"`
}

func (g *Gateway) Info() Info {
	return Info{
		DisplayName:        DisplayName,
		HomepageURL:        HomepageURL,
		DefaultCurrency:    DefaultCurrency,
		SupportedCountries: []string{"US", "CA"},
		SupportedCardTypes: []string{"visa", "master", "american_express", "discover"},
		SupportsScrubbing:  g.SupportsScrubbing(),
	}
}
