package spotify

// recommendationsResponse is the body of GET /recommendations.
type recommendationsResponse struct {
	Tracks []spotifyTrack `json:"tracks"`
}

// spotifyTrack holds the subset of the Spotify track object we map.
type spotifyTrack struct {
	Name         string          `json:"name"`
	Artists      []spotifyArtist `json:"artists"`
	Album        spotifyAlbum    `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type spotifyArtist struct {
	Name string `json:"name"`
}

type spotifyAlbum struct {
	Name   string         `json:"name"`
	Images []spotifyImage `json:"images"`
}

type spotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
