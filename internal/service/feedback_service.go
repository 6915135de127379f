package service

import (
	"context"

	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/repository/contract"
)

// IFeedbackService records and reads per-message thumbs-up/down tallies.
type IFeedbackService interface {
	Record(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	Get(ctx context.Context, messageId string) (*dto.FeedbackCount, error)
}

type feedbackService struct {
	repo contract.IFeedbackRepository
	log  logger.ILogger
}

func NewFeedbackService(repo contract.IFeedbackRepository, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log,
	}
}

func (s *feedbackService) Record(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	count, err := s.repo.Increment(ctx, request.MessageId, request.Feedback)
	if err != nil {
		s.log.Error("feedback", "Failed to record feedback", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return &dto.FeedbackResponse{Success: true, Feedback: *count}, nil
}

func (s *feedbackService) Get(ctx context.Context, messageId string) (*dto.FeedbackCount, error) {
	return s.repo.Get(ctx, messageId)
}
