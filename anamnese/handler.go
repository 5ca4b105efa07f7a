package anamnese

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

const (
	maxSoap      = 8000
	maxQueixa    = 500
	maxHistorico = 2000
)

func NewHandler(ai Generator) *Handler {
	if ai == nil {
		ai = openai.NewClient(config.Load())
	}
	return &Handler{ai: ai}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/recomendacoes-anamnese", h.Recommend)
}

// Recommend suggests follow-up anamnesis questions for a SOAP summary.
func (h *Handler) Recommend(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]any{}
	}
	soap := sanitize.Text(body["soap"], maxSoap)
	if soap == "" {
		apierr.MissingField(c, "soap")
		return
	}
	queixa := sanitize.Text(body["queixa_principal"], maxQueixa)
	historico := sanitize.Text(body["historico_resumido"], maxHistorico)

	system, user := prompt.FollowupQuestions(soap, queixa, historico)
	raw, err := h.ai.Complete(c.Request.Context(), system, user, openai.Options{Temperature: 0.3, MaxTokens: 500})
	if err != nil {
		apierr.Generation(c, "recomendacoes-anamnese", err)
		return
	}
	parsed, err := extract.JSON(raw)
	if err != nil {
		apierr.Generation(c, "recomendacoes-anamnese", err)
		return
	}

	// Quantity is bounded only by the prompt's "5 a 15"; kept uncapped here.
	perguntas := sanitize.StringArray(parsed["perguntas"], 0, 0)
	c.JSON(http.StatusOK, gin.H{"perguntas": perguntas})
}
