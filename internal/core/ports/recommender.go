package ports

import (
	"context"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
)

// TrackRecommender returns tracks matching a mood profile.
type TrackRecommender interface {
	Recommend(ctx context.Context, profile domain.MoodProfile) ([]domain.Track, error)
}
