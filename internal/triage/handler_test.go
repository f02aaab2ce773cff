package triage

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

func postAnalyze(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/triage/analyze", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.Analyze(w, req)
	return w
}

func TestAnalyzeHandler(t *testing.T) {
	llm := &fakeLLM{text: `{"especialidad": "Neumología", "confianza": 75, "razonamiento": "Tos persistente con dificultad respiratoria."}`}
	h := NewHandler(NewClassifier(llm, 0), nil, logging.Default())

	w := postAnalyze(t, h, `{"symptoms": "tos persistente y falta de aire"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got Analysis
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Specialty != "Neumología" {
		t.Errorf("unexpected specialty %q", got.Specialty)
	}
}

func TestAnalyzeHandlerEmptySymptoms(t *testing.T) {
	h := NewHandler(NewClassifier(&fakeLLM{}, 0), nil, logging.Default())

	w := postAnalyze(t, h, `{"symptoms": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeHandlerInvalidBody(t *testing.T) {
	h := NewHandler(NewClassifier(&fakeLLM{}, 0), nil, logging.Default())

	w := postAnalyze(t, h, `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeHandlerUpstreamFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("timeout")}
	h := NewHandler(NewClassifier(llm, 0), nil, logging.Default())

	w := postAnalyze(t, h, `{"symptoms": "dolor abdominal"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
