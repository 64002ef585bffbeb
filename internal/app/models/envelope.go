package models

// Envelope is the wrapper the portal puts around every list response.
type Envelope[T any] struct {
	Data []T `json:"data"`
}
