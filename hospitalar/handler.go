package hospitalar

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

// Generator matches the completion surface of openai.Client.
type Generator interface {
	Complete(ctx context.Context, system, user string, opts openai.Options) (string, error)
}

type Handler struct {
	ai Generator
}

const maxTranscricao = 20000

func NewHandler(ai Generator) *Handler {
	if ai == nil {
		ai = openai.NewClient(config.Load())
	}
	return &Handler{ai: ai}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/prescricao-hospitalar", h.Generate)
}

// Generate turns a consultation transcript into a hospital order sheet.
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

	system, user := prompt.HospitalOrder(transcricao)
	raw, err := h.ai.Complete(c.Request.Context(), system, user, openai.Options{Temperature: 0.2, MaxTokens: 700})
	if err != nil {
		apierr.Generation(c, "prescricao-hospitalar", err)
		return
	}
	parsed, err := extract.JSON(raw)
	if err != nil {
		apierr.Generation(c, "prescricao-hospitalar", err)
		return
	}

	texto, _ := parsed["prescricao_hospitalar"].(string)
	c.JSON(http.StatusOK, gin.H{"prescricao_hospitalar": texto})
}
