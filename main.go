package main

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"medscribe-backend/anamnese"
	"medscribe-backend/config"
	"medscribe-backend/hospitalar"
	"medscribe-backend/medicamentos"
	"medscribe-backend/openai"
	"medscribe-backend/soapnote"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		// Not fatal: /health stays up, generation routes answer 500.
		log.Warn("OPENAI_API_KEY não configurada; rotas de geração responderão 500")
	}

	ai := openai.NewClient(cfg)

	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	soapnote.NewHandler(ai).RegisterRoutes(r)
	anamnese.NewHandler(ai).RegisterRoutes(r)
	hospitalar.NewHandler(ai).RegisterRoutes(r)
	medicamentos.NewHandler(ai).RegisterRoutes(r)

	log.Infof("servidor ouvindo na porta %s (modelo %s)", cfg.Port, cfg.OpenAIModel)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("falha ao iniciar o servidor: %v", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Set("request_id", id)
		c.Next()
	}
}
