package bootstrap

import (
	"log"

	"ai-supportbot-be/internal/config"
	"ai-supportbot-be/internal/controller"
	"ai-supportbot-be/internal/pkg/logger"
	"ai-supportbot-be/internal/repository/contract"
	"ai-supportbot-be/internal/repository/memory"
	"ai-supportbot-be/internal/repository/redisrepo"
	"ai-supportbot-be/internal/service"
	"ai-supportbot-be/pkg/evaluation"
	"ai-supportbot-be/pkg/history"
	"ai-supportbot-be/pkg/knowledge"
	"ai-supportbot-be/pkg/llm/factory"
	"ai-supportbot-be/pkg/ratelimit"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	FeedbackController controller.IFeedbackController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Knowledge corpus (loaded once, read-only afterwards)
	kb, err := knowledge.New(cfg.Knowledge.Path)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load knowledge base: %v", err)
	}
	sysLogger.Info("bootstrap", "Knowledge base loaded", map[string]interface{}{
		"path":    cfg.Knowledge.Path,
		"entries": kb.Len(),
	})

	// 3. Generation backend
	baseURL := cfg.Ai.BaseURL
	if cfg.Ai.Provider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.Model, baseURL, cfg.Ai.APIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Shared turn state
	limiter := ratelimit.New(cfg.Limits.MaxRequests, cfg.Limits.RateLimitWindow)
	historyStore := history.NewStore(cfg.Limits.MaxHistory, cfg.Limits.SessionTTL)
	evaluator := evaluation.NewEvaluator()

	// 5. Feedback counters: Redis when configured, in-process otherwise
	var feedbackRepo contract.IFeedbackRepository
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, using in-memory feedback store: %v", err)
			feedbackRepo = memory.NewFeedbackRepository()
		} else {
			feedbackRepo = redisrepo.NewFeedbackRepository(redis.NewClient(opts))
			log.Println("[INFO] Using Redis feedback store")
		}
	} else {
		feedbackRepo = memory.NewFeedbackRepository()
	}

	// 6. Services
	chatService := service.NewChatService(llmProvider, kb, limiter, historyStore, evaluator, sysLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, sysLogger)

	return &Container{
		ChatController:     controller.NewChatController(chatService, cfg.App.Name),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		Logger:             sysLogger,
	}
}
