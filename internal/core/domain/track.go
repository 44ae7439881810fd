package domain

// Track is a recommended track as returned to the client.
type Track struct {
	Name   string  `json:"name"`
	Artist string  `json:"artist"`
	URL    string  `json:"url"`
	Image  *string `json:"image"` // nil when the album has no artwork
}
