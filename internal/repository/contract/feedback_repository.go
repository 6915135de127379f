package contract

import (
	"context"

	"ai-supportbot-be/internal/dto"
)

// IFeedbackRepository stores per-message thumbs-up/down tallies keyed by
// the stream frame id.
type IFeedbackRepository interface {
	// Increment bumps one counter ("up" or "down") and returns the new tallies.
	Increment(ctx context.Context, messageId, feedback string) (*dto.FeedbackCount, error)

	// Get returns the tallies for a message, zeros when unknown.
	Get(ctx context.Context, messageId string) (*dto.FeedbackCount, error)
}
