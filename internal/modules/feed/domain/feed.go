package domain

// DefaultItemLimit is how many of the newest downloads a feed lists
const DefaultItemLimit = 50

// FeedConfig describes the library feed served over HTTP
type FeedConfig struct {
	Title   string `json:"title"`
	BaseURL string `json:"base_url"`
	Limit   int    `json:"limit"`
}
