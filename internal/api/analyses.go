package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/interview-summarizer/internal/media"
	"github.com/nguyentantai21042004/interview-summarizer/internal/models"
	"github.com/nguyentantai21042004/interview-summarizer/internal/report"
)

func (h *Handler) createAnalysis(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+maxFormMemory)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	filename := filepath.Base(file.Filename)
	format, err := media.Lookup(filename)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	lang := h.defaultLanguage
	if v := strings.TrimSpace(c.PostForm("language")); v != "" {
		lang = models.ParseLanguage(v)
	}
	apiKey := c.GetHeader(apiKeyHeader)
	if v := c.PostForm("api_key"); v != "" {
		apiKey = v
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open file failed"})
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read file failed"})
		return
	}

	ctx := c.Request.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	h.inFlight.Add(1)
	defer h.inFlight.Done()

	asset := models.Asset{Name: filename, MIMEType: file.Header.Get("Content-Type"), Data: data}
	result, err := h.processor.Analyze(ctx, asset, lang, apiKey)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	analysis := models.Analysis{
		ID:           uuid.NewString(),
		Filename:     filename,
		Language:     lang,
		LanguageName: lang.DisplayName(),
		Kind:         string(format.Kind),
		Result:       result,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.Save(c.Request.Context(), h.sessionID(c), analysis); err != nil {
		h.logger.Warn(c.Request.Context(), "Failed to store analysis %s: %v", analysis.ID, err)
	}

	c.JSON(http.StatusCreated, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	a, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) getReport(c *gin.Context) {
	a, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	art, err := report.Build(report.KindReport, a.Result, report.Stem(a.Filename))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, art.ContentType, []byte(art.Content))
}

func (h *Handler) downloadArtifact(c *gin.Context) {
	a, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	art, err := report.Build(report.Kind(c.Param("artifact")), a.Result, report.Stem(a.Filename))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", contentDisposition(art.Filename))
	c.Data(http.StatusOK, art.ContentType, []byte(art.Content))
}

func (h *Handler) lastAnalysis(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis in this session"})
		return
	}
	a, err := h.store.Last(c.Request.Context(), id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// contentDisposition marks a download as an attachment. Non-ASCII names use the RFC 2231 form.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
