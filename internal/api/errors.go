package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/interview-summarizer/internal/analyzer"
	"github.com/nguyentantai21042004/interview-summarizer/internal/config"
	"github.com/nguyentantai21042004/interview-summarizer/internal/media"
	"github.com/nguyentantai21042004/interview-summarizer/internal/report"
	"github.com/nguyentantai21042004/interview-summarizer/internal/session"
	"github.com/nguyentantai21042004/interview-summarizer/internal/stager"
)

// statusFor maps a pipeline error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		return http.StatusBadRequest
	case errors.Is(err, media.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, session.ErrNotFound), errors.Is(err, report.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, stager.ErrStaging):
		return http.StatusInternalServerError
	case errors.Is(err, analyzer.ErrPollTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, analyzer.ErrRemoteProcessing), errors.Is(err, analyzer.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "Request failed: %v", err)
	}
	body := gin.H{"error": err.Error()}
	var genErr *analyzer.GenerationError
	if errors.As(err, &genErr) {
		body["step"] = string(genErr.Step)
	}
	c.AbortWithStatusJSON(status, body)
}
