package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akashpersetti/hired-eventually/internal/coverletter"
	"github.com/akashpersetti/hired-eventually/internal/ledger"
	"github.com/akashpersetti/hired-eventually/internal/llm"
	anthropicllm "github.com/akashpersetti/hired-eventually/internal/llm/anthropic"
	geminillm "github.com/akashpersetti/hired-eventually/internal/llm/gemini"
	openaillm "github.com/akashpersetti/hired-eventually/internal/llm/openai"
	"github.com/akashpersetti/hired-eventually/internal/shared/config"
	"github.com/akashpersetti/hired-eventually/internal/shared/server/middleware"
	"github.com/akashpersetti/hired-eventually/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	registry := buildRegistry(cfg)
	ledgerSvc := ledger.NewService(ledger.NewXLSXStore(cfg.LedgerPath))
	ledgerHandler := ledger.NewHandler(ledgerSvc)
	letterSvc := coverletter.NewService(registry)
	letterHandler := coverletter.NewHandler(letterSvc, ledgerSvc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	letterHandler.RegisterRoutes(api)
	ledgerHandler.RegisterRoutes(api)

	return r
}

// buildRegistry registers a provider client for each vendor whose API key is
// configured. Requests for an unregistered vendor fail at dispatch with
// ErrUnsupportedProvider rather than at startup.
func buildRegistry(cfg config.Config) *llm.Registry {
	registry := llm.NewRegistry()

	if cfg.AnthropicAPIKey != "" {
		client, err := anthropicllm.NewClient(cfg.AnthropicAPIKey, "claude-sonnet-4-0", cfg.ProviderTimeout)
		if err != nil {
			log.Printf("anthropic client disabled: %v", err)
		} else {
			registry.Register(llm.VendorAnthropic, client)
		}
	}
	if cfg.OpenAIAPIKey != "" {
		client, err := openaillm.NewClient(cfg.OpenAIAPIKey, "gpt-5.2", cfg.ProviderTimeout)
		if err != nil {
			log.Printf("openai client disabled: %v", err)
		} else {
			registry.Register(llm.VendorOpenAI, client)
		}
	}
	if cfg.GeminiAPIKey != "" {
		client, err := geminillm.NewClient(cfg.GeminiAPIKey, "gemini-3-flash-preview", cfg.ProviderTimeout)
		if err != nil {
			log.Printf("gemini client disabled: %v", err)
		} else {
			registry.Register(llm.VendorGoogle, client)
		}
	}

	return registry
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
