package models

import "encoding/json"

// Envelope is the top-level object returned by the token-data API. Pairs
// stay opaque raw messages: the probe only counts them, and an absent field
// behaves as an empty list.
type Envelope struct {
	Pairs []json.RawMessage `json:"pairs"`
}
