package soapnote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"medscribe-backend/openai"
)

type mockAI struct {
	reply string
	err   error
	calls int
}

func (m *mockAI) Complete(ctx context.Context, system, user string, opts openai.Options) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_OK(t *testing.T) {
	ai := &mockAI{reply: `{"soap":"S: cefaleia","prescricao":"Dipirona 500mg VO 6/6h"}`}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "paciente com dor de cabeça"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["soap"] != "S: cefaleia" || resp["prescricao"] != "Dipirona 500mg VO 6/6h" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestGenerate_RecoversJSONWrappedInProse(t *testing.T) {
	ai := &mockAI{reply: "Here is the result:\n{\"soap\":\"S: ok\",\"prescricao\":\"\"}\nThanks"}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "consulta"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["soap"] != "S: ok" || resp["prescricao"] != "" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestGenerate_MissingTranscricao(t *testing.T) {
	ai := &mockAI{reply: "{}"}
	r := setupRouter(NewHandler(ai))

	for _, body := range []map[string]any{{}, {"transcricao": ""}, {"transcricao": "   "}, {"transcricao": 42}} {
		w := post(r, "/api/gerar-soap", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] == "" {
			t.Fatalf("body %v: missing error message", body)
		}
	}
	if ai.calls != 0 {
		t.Fatalf("backend called %d times on invalid input", ai.calls)
	}
}

func TestGenerate_BackendFailureIs500(t *testing.T) {
	ai := &mockAI{err: openai.ErrBackendUnavailable}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "consulta"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Erro ao chamar a API da OpenAI." {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

func TestGenerate_MissingKeyIs500(t *testing.T) {
	ai := &mockAI{err: openai.ErrMissingAPIKey}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "consulta"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestGenerate_UnparsableReplyIs500(t *testing.T) {
	ai := &mockAI{reply: "desculpe, não consigo responder em JSON"}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "consulta"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Não foi possível interpretar a resposta da OpenAI." {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

func TestGenerate_NonStringFieldsDefaultToEmpty(t *testing.T) {
	ai := &mockAI{reply: `{"soap":123,"prescricao":null}`}
	r := setupRouter(NewHandler(ai))

	w := post(r, "/api/gerar-soap", map[string]any{"transcricao": "consulta"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["soap"] != "" || resp["prescricao"] != "" {
		t.Fatalf("expected empty defaults, got %v", resp)
	}
}
