// Package spotify implements the track recommender port against the Spotify Web API.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
	"github.com/ewilliams-labs/lumiya/internal/core/ports"
)

const (
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
	DefaultBaseURL  = "https://api.spotify.com/v1"

	serviceName       = "Spotify"
	recommendTimeout  = 10 * time.Second
	recommendLimit    = 1
	maxLoggedBodySize = 4 << 10
)

// Config holds the credentials and endpoints for the Spotify client.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string // defaults to DefaultTokenURL
	BaseURL      string // defaults to DefaultBaseURL
}

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	creds      clientcredentials.Config
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertion
var _ ports.TrackRecommender = (*Client)(nil)

// NewClient constructs a new Spotify client. The recommendations call bypasses
// any system proxy and times out after 10 seconds.
func NewClient(cfg Config) *Client {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil

	return &Client{
		creds: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		},
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   recommendTimeout,
		},
		baseURL: baseURL,
	}
}

// Recommend fetches tracks matching the profile. A fresh access token is
// requested on every call.
func (c *Client) Recommend(ctx context.Context, profile domain.MoodProfile) ([]domain.Track, error) {
	// 1. Acquire a client-credentials token
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("token request failed: %w", err)}
	}

	// 2. Build the recommendations query
	reqURL, err := c.recommendationsURL(profile)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	logrus.WithFields(logrus.Fields{
		"mood": profile.Mood,
		"url":  reqURL,
	}).Debug("spotify adapter: requesting recommendations")

	// 3. Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBodySize))
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("spotify adapter: recommendations request rejected")
		return nil, &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Body: string(body)}
	}

	// 4. Decode and map
	var payload recommendationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("decode error: %w", err)}
	}

	return mapTracksToDomain(payload.Tracks), nil
}

func (c *Client) recommendationsURL(profile domain.MoodProfile) (string, error) {
	u, err := url.Parse(c.baseURL + "/recommendations")
	if err != nil {
		return "", fmt.Errorf("invalid recommendations url: %w", err)
	}

	query := u.Query()
	query.Set("seed_genres", strings.Join(profile.GenreSeeds, ","))
	query.Set("limit", strconv.Itoa(recommendLimit))
	query.Set("target_energy", formatFloat(profile.TargetEnergy))
	query.Set("target_valence", formatFloat(profile.TargetValence))
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
