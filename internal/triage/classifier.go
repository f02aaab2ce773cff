// Package triage maps free-text symptom descriptions onto the clinic's
// specialty catalog using an LLM, constrained so the model can never route a
// patient outside the registered specialties.
package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
)

// ErrEmptySymptoms is returned when the input has no usable text.
var ErrEmptySymptoms = errors.New("triage: symptoms text is required")

// Analysis is the classifier verdict for one symptom description.
type Analysis struct {
	Specialty  doctors.Specialty `json:"especialidad"`
	Confidence int               `json:"confianza"` // 0-100
	Rationale  string            `json:"razonamiento"`
}

const classifierPrompt = `Eres un asistente médico especializado en triaje. Analiza los síntomas y determina la especialidad médica más apropiada.

ESPECIALIDADES DISPONIBLES:
%s

SÍNTOMAS DEL PACIENTE:
"%s"

INSTRUCCIONES:
1. Analiza cuidadosamente los síntomas descritos
2. Selecciona la especialidad más apropiada de la lista disponible
3. Si los síntomas son generales o no específicos, recomienda "Medicina General"
4. Proporciona un nivel de confianza del 0 al 100 basado en qué tan específicos son los síntomas
5. Explica brevemente por qué recomiendas esa especialidad

IMPORTANTE:
- Solo usa especialidades de la lista proporcionada
- Si hay dudas, es mejor derivar a Medicina General
- Sé conservador en el nivel de confianza
- No hagas diagnósticos, solo recomienda la especialidad apropiada

Responde únicamente con JSON: {"especialidad": "<especialidad>", "confianza": <0-100>, "razonamiento": "<explicación>"}`

// Classifier routes symptom descriptions to a Specialty via an LLM.
type Classifier struct {
	client    LLMClient
	maxTokens int32
}

// NewClassifier creates a symptom classifier over the given LLM client.
func NewClassifier(client LLMClient, maxTokens int32) *Classifier {
	if maxTokens <= 0 {
		maxTokens = 400
	}
	return &Classifier{client: client, maxTokens: maxTokens}
}

// Analyze classifies a symptom description. Out-of-enum answers and parse
// failures fall back to Medicina General with low confidence rather than
// surfacing an error; only transport failures are returned to the caller.
func (c *Classifier) Analyze(ctx context.Context, symptoms string) (Analysis, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return Analysis{}, ErrEmptySymptoms
	}

	names := make([]string, 0, len(doctors.AllSpecialties()))
	for _, s := range doctors.AllSpecialties() {
		names = append(names, s.String())
	}
	prompt := fmt.Sprintf(classifierPrompt, strings.Join(names, ", "), symptoms)

	resp, err := c.client.Complete(ctx, LLMRequest{
		Messages:    []ChatMessage{{Role: ChatRoleUser, Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("triage: classification failed: %w", err)
	}

	return parseAnalysis(resp.Text), nil
}

// parseAnalysis extracts the JSON verdict from the model output. The model
// may wrap the JSON in extra prose or code fences.
func parseAnalysis(text string) Analysis {
	fallback := Analysis{
		Specialty:  doctors.SpecialtyMedicinaGeneral,
		Confidence: 30,
		Rationale:  "Los síntomas no permiten determinar una especialidad específica.",
	}

	content := strings.TrimSpace(text)
	startIdx := strings.Index(content, "{")
	endIdx := strings.LastIndex(content, "}")
	if startIdx < 0 || endIdx <= startIdx {
		return fallback
	}
	content = content[startIdx : endIdx+1]

	var result Analysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return fallback
	}

	if !result.Specialty.IsValid() {
		result.Specialty = doctors.SpecialtyMedicinaGeneral
		if result.Confidence > 50 {
			result.Confidence = 50
		}
	}
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 100 {
		result.Confidence = 100
	}
	if result.Rationale == "" {
		result.Rationale = fallback.Rationale
	}
	return result
}
