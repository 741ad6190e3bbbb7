package model

const (
	// Column bounds enforced by the quotes table schema.
	MaxNameLength  = 250
	MaxQuoteLength = 1000
)

type Quote struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

type CreateQuoteRequest struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}
