package memory

import (
	"context"
	"sync"
	"time"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type FeedbackRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

var _ contract.IFeedbackRepository = &FeedbackRepository{}

func NewFeedbackRepository() *FeedbackRepository {
	// Counters live for a day; feedback on long-gone messages is not worth
	// keeping in process memory.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &FeedbackRepository{
		cache: c,
	}
}

func (r *FeedbackRepository) Increment(_ context.Context, messageId, feedback string) (*dto.FeedbackCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := &dto.FeedbackCount{}
	if x, found := r.cache.Get(messageId); found {
		count = x.(*dto.FeedbackCount)
	}

	if feedback == "up" {
		count.ThumbsUp++
	} else {
		count.ThumbsDown++
	}
	r.cache.Set(messageId, count, cache.DefaultExpiration)

	copied := *count
	return &copied, nil
}

func (r *FeedbackRepository) Get(_ context.Context, messageId string) (*dto.FeedbackCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(messageId); found {
		copied := *(x.(*dto.FeedbackCount))
		return &copied, nil
	}
	return &dto.FeedbackCount{}, nil
}
