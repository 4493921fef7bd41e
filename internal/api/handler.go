package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/logger"
	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
	"github.com/nguyentantai21042004/interview-summarizer/internal/processor"
	"github.com/nguyentantai21042004/interview-summarizer/internal/session"
)

const (
	sessionCookie = "session_id"
	requestIDKey  = "X-Request-ID"
	apiKeyHeader  = "X-Gemini-API-Key"
	maxFormMemory = 32 << 20
)

// Handler wires HTTP routes to the processor and the session store.
type Handler struct {
	processor       processor.Processor
	store           session.Store
	logger          logger.Logger
	maxUploadBytes  int64
	requestTimeout  time.Duration
	sessionTTL      time.Duration
	defaultLanguage models.Language

	inFlight sync.WaitGroup
}

// NewHandler constructs a Handler instance.
func NewHandler(cfg *config.Config, proc processor.Processor, store session.Store, log logger.Logger) *Handler {
	return &Handler{
		processor:       proc,
		store:           store,
		logger:          log,
		maxUploadBytes:  cfg.MaxUploadBytes(),
		requestTimeout:  cfg.Server.RequestTimeout,
		sessionTTL:      cfg.Session.TTL,
		defaultLanguage: models.ParseLanguage(cfg.Analysis.DefaultLanguage),
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestID(), h.accessLog())
	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	api.POST("/analyses", h.createAnalysis)
	api.GET("/analyses/:id", h.getAnalysis)
	api.GET("/analyses/:id/report", h.getReport)
	api.GET("/analyses/:id/artifacts/:artifact", h.downloadArtifact)
	api.GET("/session", h.lastAnalysis)
}

// Drain blocks until every running analysis has returned or ctx is done.
func (h *Handler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
