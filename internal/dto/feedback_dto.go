package dto

type FeedbackRequest struct {
	MessageId string `json:"messageId" validate:"required"`
	Feedback  string `json:"feedback" validate:"required,oneof=up down"`
}

type FeedbackCount struct {
	ThumbsUp   int64 `json:"thumbsUp"`
	ThumbsDown int64 `json:"thumbsDown"`
}

type FeedbackResponse struct {
	Success  bool          `json:"success"`
	Feedback FeedbackCount `json:"feedback"`
}
