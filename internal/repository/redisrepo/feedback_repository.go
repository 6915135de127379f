package redisrepo

import (
	"context"
	"fmt"
	"strconv"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const (
	fieldThumbsUp   = "thumbsUp"
	fieldThumbsDown = "thumbsDown"
)

// FeedbackRepository keeps the tallies in a Redis hash per message, so
// counters survive restarts and are shared across replicas.
type FeedbackRepository struct {
	client *redis.Client
}

var _ contract.IFeedbackRepository = &FeedbackRepository{}

func NewFeedbackRepository(client *redis.Client) *FeedbackRepository {
	return &FeedbackRepository{
		client: client,
	}
}

func key(messageId string) string {
	return "feedback:" + messageId
}

func (r *FeedbackRepository) Increment(ctx context.Context, messageId, feedback string) (*dto.FeedbackCount, error) {
	field := fieldThumbsDown
	if feedback == "up" {
		field = fieldThumbsUp
	}

	if err := r.client.HIncrBy(ctx, key(messageId), field, 1).Err(); err != nil {
		return nil, fmt.Errorf("increment feedback: %w", err)
	}
	return r.Get(ctx, messageId)
}

func (r *FeedbackRepository) Get(ctx context.Context, messageId string) (*dto.FeedbackCount, error) {
	values, err := r.client.HGetAll(ctx, key(messageId)).Result()
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	count := &dto.FeedbackCount{}
	if v, err := strconv.ParseInt(values[fieldThumbsUp], 10, 64); err == nil {
		count.ThumbsUp = v
	}
	if v, err := strconv.ParseInt(values[fieldThumbsDown], 10, 64); err == nil {
		count.ThumbsDown = v
	}
	return count, nil
}
