package domain

import "time"

// InteractionRecord is one row of the interaction log.
// Only UserText is required; empty optional fields are stored as NULL.
type InteractionRecord struct {
	ID          int64
	CreatedAt   time.Time
	UserText    string
	MoodKeyword string
	SongName    string
	ArtistName  string
	SpotifyURL  string
}

// NewInteractionRecord builds a record for a user input and the track
// recommended for it, if any.
func NewInteractionRecord(userText, moodKeyword string, track *Track) InteractionRecord {
	rec := InteractionRecord{
		UserText:    userText,
		MoodKeyword: moodKeyword,
	}
	if track != nil {
		rec.SongName = track.Name
		rec.ArtistName = track.Artist
		rec.SpotifyURL = track.URL
	}
	return rec
}
