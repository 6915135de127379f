package service

import (
	"context"
	"strings"
	"time"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/dto"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/pkg/evaluation"
	"ai-supportbot-be/pkg/history"
	"ai-supportbot-be/pkg/knowledge"
	"ai-supportbot-be/pkg/llm"
	"ai-supportbot-be/pkg/ratelimit"

	"github.com/google/uuid"
)

// maxHistoryTurns windows how many past turns are replayed to the model.
// The store itself keeps more; this only bounds the prompt.
const maxHistoryTurns = 5

// generationMaxTokens caps one answer's length at the backend.
const generationMaxTokens = 500

// IChatService drives one conversational turn end to end.
type IChatService interface {
	// Stream validates and rate-checks the request, then returns the turn's
	// frame stream. The channel is closed by the producer after the done
	// sentinel; cancelling ctx stops production. Pre-stream rejections are
	// returned as ErrInvalidPrompt or ErrRateLimited.
	Stream(ctx context.Context, clientKey string, request *dto.ChatRequest) (<-chan dto.Frame, error)

	// ClearHistory drops a session's turn log. Unknown sessions succeed.
	ClearHistory(sessionId string)
}

type chatService struct {
	llmProvider llm.LLMProvider
	kb          *knowledge.Base
	limiter     *ratelimit.Limiter
	historyLog  *history.Store
	evaluator   *evaluation.Evaluator
	log         logger.ILogger
}

func NewChatService(
	llmProvider llm.LLMProvider,
	kb *knowledge.Base,
	limiter *ratelimit.Limiter,
	historyLog *history.Store,
	evaluator *evaluation.Evaluator,
	log logger.ILogger,
) IChatService {
	return &chatService{
		llmProvider: llmProvider,
		kb:          kb,
		limiter:     limiter,
		historyLog:  historyLog,
		evaluator:   evaluator,
		log:         log,
	}
}

func (s *chatService) Stream(ctx context.Context, clientKey string, request *dto.ChatRequest) (<-chan dto.Frame, error) {
	// Validation runs first: a rejected prompt must not touch the rate
	// counter or the session log.
	if strings.TrimSpace(request.Prompt) == "" || request.SessionId == "" {
		s.log.Warn("chat", "Invalid or missing prompt received", nil)
		return nil, ErrInvalidPrompt
	}

	if clientKey == "" {
		clientKey = "unknown"
	}
	if !s.limiter.Allow(clientKey) {
		s.log.Warn("chat", "Rate limit exceeded", map[string]interface{}{"client": clientKey})
		return nil, ErrRateLimited
	}

	frames := make(chan dto.Frame)
	go s.runTurn(ctx, frames, request)
	return frames, nil
}

// runTurn executes RETRIEVING, STREAMING and SCORING for one turn and emits
// the frame sequence. It owns the frames channel.
func (s *chatService) runTurn(ctx context.Context, frames chan<- dto.Frame, request *dto.ChatRequest) {
	defer close(frames)

	turnId := uuid.NewString()
	emit := func(frame dto.Frame) bool {
		select {
		case frames <- frame:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if s.llmProvider == nil {
		s.log.Error("chat", "Generation backend is not initialized", nil)
		emit(dto.Frame{Kind: dto.FrameError, Err: "An error occurred while processing your request."})
		emit(dto.Frame{Kind: dto.FrameDone})
		return
	}

	turnLog := s.historyLog.Get(request.SessionId)
	messages := s.buildMessages(request, turnLog)

	var answer strings.Builder
	start := time.Now()

	chunks, err := s.llmProvider.ChatStream(ctx, messages, llm.WithMaxTokens(generationMaxTokens))
	if err != nil {
		// The stream never opened. Recover inline: the turn degrades to the
		// fallback text but still completes, is scored and logged.
		s.log.Error("chat", "Generation stream failed to open", map[string]interface{}{"error": err.Error()})
		answer.WriteString(llm.FallbackMessage)
		if !emit(dto.Frame{Kind: dto.FrameContent, Id: turnId, Content: llm.FallbackMessage}) {
			return
		}
	} else {
		for chunk := range chunks {
			answer.WriteString(chunk.Content)
			if !emit(dto.Frame{Kind: dto.FrameContent, Id: turnId, Content: chunk.Content}) {
				return
			}
		}
	}

	responseTime := time.Since(start).Milliseconds()
	metrics := s.evaluator.Evaluate(request.Prompt, answer.String(), responseTime)

	// History mutates only once the turn has fully streamed.
	s.historyLog.Append(request.SessionId, request.Prompt, answer.String())

	if !emit(dto.Frame{Kind: dto.FrameMetrics, Id: turnId, Metrics: &metrics}) {
		return
	}
	emit(dto.Frame{Kind: dto.FrameDone})

	s.log.Info("chat", "Turn completed", map[string]interface{}{
		"session":        request.SessionId,
		"turn":           turnId,
		"responseTimeMs": responseTime,
		"responseLength": metrics.ResponseLength,
	})
}

// buildMessages assembles the generation request: system instruction with
// retrieved knowledge, the windowed history with roles assigned by position
// parity, and the templated current prompt.
func (s *chatService) buildMessages(request *dto.ChatRequest, turnLog []string) []llm.Message {
	relevantKnowledge := s.kb.RelevantKnowledge(request.Prompt)

	messages := []llm.Message{{
		Role: constant.ChatMessageRoleSystem,
		Content: constant.SystemPrompt +
			"\n\nRelevant knowledge:\n" + relevantKnowledge +
			"\n\n" + constant.ResponseFormatInstruction,
	}}

	if len(turnLog) > maxHistoryTurns*2 {
		turnLog = turnLog[len(turnLog)-maxHistoryTurns*2:]
	}
	for i, turn := range turnLog {
		role := constant.ChatMessageRoleUser
		if i%2 == 1 {
			role = constant.ChatMessageRoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn})
	}

	userPrompt := strings.NewReplacer(
		"{context}", request.Context,
		"{prompt}", request.Prompt,
	).Replace(constant.UserPromptTemplate)

	return append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: userPrompt})
}

func (s *chatService) ClearHistory(sessionId string) {
	s.historyLog.Clear(sessionId)
	s.log.Info("chat", "Conversation history cleared", map[string]interface{}{"session": sessionId})
}
