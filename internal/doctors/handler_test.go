package doctors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

func TestListBySpecialty(t *testing.T) {
	h := NewHandler(NewSeededRegistry(), logging.Default())

	req := httptest.NewRequest("GET", "/api/doctors?especialidad=Urología", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected 2 urologists, got %d", resp.Count)
	}
	if resp.Doctors[0].ID != "doc018" {
		t.Errorf("expected insertion order, got %s first", resp.Doctors[0].ID)
	}
}

func TestListMissingSpecialty(t *testing.T) {
	h := NewHandler(NewSeededRegistry(), logging.Default())

	req := httptest.NewRequest("GET", "/api/doctors", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListUnknownSpecialtyEmpty(t *testing.T) {
	h := NewHandler(NewSeededRegistry(), logging.Default())

	req := httptest.NewRequest("GET", "/api/doctors?especialidad=Quiromancia", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 0 || len(resp.Doctors) != 0 {
		t.Errorf("expected empty list, got %+v", resp)
	}
}
