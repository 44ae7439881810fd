package spotify

import "github.com/ewilliams-labs/lumiya/internal/core/domain"

// mapTrackToDomain converts a raw Spotify track to a domain track.
// Only the first artist is kept; the image is the first album image, if any.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	dt := domain.Track{
		Name: st.Name,
		URL:  st.ExternalURLs.Spotify,
	}
	if len(st.Artists) > 0 {
		dt.Artist = st.Artists[0].Name
	}
	if len(st.Album.Images) > 0 {
		cover := st.Album.Images[0].URL
		dt.Image = &cover
	}
	return dt
}

// mapTracksToDomain maps tracks in order. Never returns nil.
func mapTracksToDomain(tracks []spotifyTrack) []domain.Track {
	out := make([]domain.Track, 0, len(tracks))
	for _, st := range tracks {
		out = append(out, mapTrackToDomain(st))
	}
	return out
}
