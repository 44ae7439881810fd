package ports

import (
	"context"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
)

// InteractionLog is the append-only interaction store. Save reports success
// as a bool; implementations log failures instead of returning them.
type InteractionLog interface {
	Save(ctx context.Context, rec domain.InteractionRecord) bool
}
