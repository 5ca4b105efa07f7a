// Package apierr converts pipeline failures into the flat {"error": ...}
// body shared by every endpoint.
package apierr

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"medscribe-backend/extract"
	"medscribe-backend/openai"
)

// Generation answers 500 with a fixed message per failure class. The raw
// error is logged for operability but never echoed to the caller.
func Generation(c *gin.Context, route string, err error) {
	msg := "Erro interno no servidor."
	switch {
	case errors.Is(err, openai.ErrMissingAPIKey):
		msg = "Variável de ambiente OPENAI_API_KEY não configurada no servidor."
	case errors.Is(err, openai.ErrBackendUnavailable):
		msg = "Erro ao chamar a API da OpenAI."
	case errors.Is(err, openai.ErrEmptyCompletion):
		msg = "Resposta inesperada da OpenAI."
	case errors.Is(err, extract.ErrUnparsable):
		msg = "Não foi possível interpretar a resposta da OpenAI."
	}
	log.WithField("route", route).Errorf("geração falhou: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// MissingField answers 400 for a required field absent or blank after trim.
func MissingField(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Campo '" + field + "' é obrigatório."})
}
