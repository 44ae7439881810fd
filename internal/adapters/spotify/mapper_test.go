package spotify

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTrackToDomain(t *testing.T) {
	st := spotifyTrack{
		Name:    "Clair de Lune",
		Artists: []spotifyArtist{{Name: "Debussy"}, {Name: "Someone Else"}},
		Album:   spotifyAlbum{Images: []spotifyImage{{URL: "big.jpg"}, {URL: "small.jpg"}}},
	}
	st.ExternalURLs.Spotify = "https://open.spotify.com/track/abc"

	got := mapTrackToDomain(st)
	assert.Equal(t, "Clair de Lune", got.Name)
	assert.Equal(t, "Debussy", got.Artist)
	assert.Equal(t, "https://open.spotify.com/track/abc", got.URL)
	require.NotNil(t, got.Image)
	assert.Equal(t, "big.jpg", *got.Image)

	st.Album.Images = nil
	assert.Nil(t, mapTrackToDomain(st).Image)
}

func TestMapTracksToDomain_Empty(t *testing.T) {
	got := mapTracksToDomain(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{ClientID: "id", ClientSecret: "secret"})

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTokenURL, c.creds.TokenURL)
	assert.Equal(t, recommendTimeout, c.httpClient.Timeout)

	transport, ok := c.httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Nil(t, transport.Proxy, "recommendations must bypass the system proxy")
}
