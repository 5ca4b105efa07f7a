package medicamentos

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

const maxMedicamentos = 30

func NewHandler(ai Generator) *Handler {
	if ai == nil {
		ai = openai.NewClient(config.Load())
	}
	return &Handler{ai: ai}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/classificar-gestacao-lactacao", h.Classify)
}

// Classify returns pregnancy and lactation risk categories per drug. An
// empty or absent drug list short-circuits to empty arrays without touching
// the backend.
func (h *Handler) Classify(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]any{}
	}
	meds := sanitize.StringArray(body["medicamentos"], maxMedicamentos, maxNome)
	if len(meds) == 0 {
		c.JSON(http.StatusOK, gin.H{"gestacao": []Classificacao{}, "lactacao": []Classificacao{}})
		return
	}

	system, user := prompt.DrugClassification(meds)
	raw, err := h.ai.Complete(c.Request.Context(), system, user, openai.Options{Temperature: 0.1, MaxTokens: 900})
	if err != nil {
		apierr.Generation(c, "classificar-gestacao-lactacao", err)
		return
	}
	parsed, err := extract.JSON(raw)
	if err != nil {
		apierr.Generation(c, "classificar-gestacao-lactacao", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gestacao": normalizeLista(parsed["gestacao"]),
		"lactacao": normalizeLista(parsed["lactacao"]),
	})
}
