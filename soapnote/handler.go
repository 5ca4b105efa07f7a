package soapnote

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"medscribe-backend/apierr"
	"medscribe-backend/config"
	"medscribe-backend/extract"
	"medscribe-backend/openai"
	"medscribe-backend/prompt"
	"medscribe-backend/sanitize"
)

// Generator matches the completion surface of openai.Client so tests can
// inject a mock without a live backend.
type Generator interface {
	Complete(ctx context.Context, system, user string, opts openai.Options) (string, error)
}

type Handler struct {
	ai Generator
}

// Caller input is clamped before prompt interpolation; the generated note
// and prescription are final user-facing content and carry no cap.
const maxTranscricao = 20000

// NewHandler injects the generator; nil falls back to the real client.
func NewHandler(ai Generator) *Handler {
	if ai == nil {
		ai = openai.NewClient(config.Load())
	}
	return &Handler{ai: ai}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/gerar-soap", h.Generate)
}

// Generate turns a consultation transcript into {soap, prescricao}.
func (h *Handler) Generate(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]any{}
	}
	transcricao := sanitize.Text(body["transcricao"], maxTranscricao)
	if transcricao == "" {
		apierr.MissingField(c, "transcricao")
		return
	}

	system, user := prompt.SOAPNote(transcricao)
	raw, err := h.ai.Complete(c.Request.Context(), system, user, openai.Options{Temperature: 0.2, MaxTokens: 800})
	if err != nil {
		apierr.Generation(c, "gerar-soap", err)
		return
	}
	parsed, err := extract.JSON(raw)
	if err != nil {
		apierr.Generation(c, "gerar-soap", err)
		return
	}

	soap, _ := parsed["soap"].(string)
	prescricao, _ := parsed["prescricao"].(string)
	c.JSON(http.StatusOK, gin.H{"soap": soap, "prescricao": prescricao})
}
