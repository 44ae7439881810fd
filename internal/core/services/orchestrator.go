package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
	"github.com/ewilliams-labs/lumiya/internal/core/ports"
)

// Orchestrator coordinates the mood mapper, the recommendation and reflection
// clients, and the interaction log.
type Orchestrator struct {
	recommender ports.TrackRecommender
	reflector   ports.DiaryReflector
	journal     ports.InteractionLog
}

// NewOrchestrator constructs an Orchestrator. journal may be nil, in which
// case nothing is persisted.
func NewOrchestrator(recommender ports.TrackRecommender, reflector ports.DiaryReflector, journal ports.InteractionLog) *Orchestrator {
	return &Orchestrator{
		recommender: recommender,
		reflector:   reflector,
		journal:     journal,
	}
}

// RecommendByEmoji maps the emoji to a mood profile, asks the recommender for
// tracks and records the interaction.
func (o *Orchestrator) RecommendByEmoji(ctx context.Context, emoji string) ([]domain.Track, error) {
	// 1. Map the label; unknown labels silently get the default profile
	profile := domain.ProfileFor(emoji)

	// 2. Fetch recommendations
	tracks, err := o.recommender.Recommend(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch recommendations: %w", err)
	}

	// 3. Record the first track alongside the input
	var first *domain.Track
	if len(tracks) > 0 {
		first = &tracks[0]
	}
	o.record(ctx, domain.NewInteractionRecord(emoji, profile.Mood, first))

	return tracks, nil
}

// AnalyzeDiary asks the reflector for a supportive reply and records the entry.
func (o *Orchestrator) AnalyzeDiary(ctx context.Context, content string) (string, error) {
	reply, err := o.reflector.Reflect(ctx, content)
	if err != nil {
		return "", fmt.Errorf("service: failed to analyze diary: %w", err)
	}

	o.record(ctx, domain.NewInteractionRecord(content, "", nil))

	return reply, nil
}

// record is best-effort: a failed write never changes the response.
func (o *Orchestrator) record(ctx context.Context, rec domain.InteractionRecord) {
	if o.journal == nil || rec.UserText == "" {
		return
	}
	if !o.journal.Save(ctx, rec) {
		logrus.WithField("mood", rec.MoodKeyword).Warn("service: interaction not recorded")
	}
}
