package dto

import (
	"ai-supportbot-be/pkg/evaluation"
)

type ChatRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	Context   string `json:"context,omitempty"`
	SessionId string `json:"sessionId" validate:"required"`
}

type ClearHistoryRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

type ClearHistoryResponse struct {
	Success bool `json:"success"`
}

type ChatConfigResponse struct {
	Title          string `json:"title"`
	InitialMessage string `json:"initialMessage"`
}

// FrameKind discriminates the units of the streaming wire protocol.
type FrameKind int

const (
	FrameContent FrameKind = iota
	FrameMetrics
	FrameError
	FrameDone
)

// Frame is one unit of a turn's response stream. For one turn the consumer
// observes content frames, then a single metrics frame, then done; on the
// hard-failure path a single error frame, then done.
type Frame struct {
	Kind    FrameKind
	Id      string
	Content string
	Metrics *evaluation.Metrics
	Err     string
}

// Wire payloads for the SSE frames.

type ContentFramePayload struct {
	Content string `json:"content"`
	Id      string `json:"id"`
}

type MetricsFramePayload struct {
	Metrics evaluation.Metrics `json:"metrics"`
	Id      string             `json:"id"`
}

type ErrorFramePayload struct {
	Error string `json:"error"`
}
