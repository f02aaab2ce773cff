package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/doctors"
)

type fakeLLM struct {
	text string
	err  error
	last LLMRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	f.last = req
	if f.err != nil {
		return LLMResponse{}, f.err
	}
	return LLMResponse{Text: f.text}, nil
}

func TestAnalyzeParsesVerdict(t *testing.T) {
	llm := &fakeLLM{text: `{"especialidad": "Cardiología", "confianza": 85, "razonamiento": "Dolor torácico con palpitaciones."}`}
	c := NewClassifier(llm, 0)

	got, err := c.Analyze(context.Background(), "dolor en el pecho y palpitaciones")
	require.NoError(t, err)
	assert.Equal(t, doctors.SpecialtyCardiologia, got.Specialty)
	assert.Equal(t, 85, got.Confidence)
	assert.NotEmpty(t, got.Rationale)
}

func TestAnalyzePromptListsAllSpecialties(t *testing.T) {
	llm := &fakeLLM{text: `{"especialidad": "Medicina General", "confianza": 40, "razonamiento": "ok"}`}
	c := NewClassifier(llm, 0)

	_, err := c.Analyze(context.Background(), "me siento cansado")
	require.NoError(t, err)
	require.Len(t, llm.last.Messages, 1)
	for _, s := range doctors.AllSpecialties() {
		assert.Contains(t, llm.last.Messages[0].Content, s.String())
	}
}

func TestAnalyzeExtractsJSONFromProse(t *testing.T) {
	llm := &fakeLLM{text: "Claro, aquí está el análisis:\n```json\n{\"especialidad\": \"Dermatología\", \"confianza\": 70, \"razonamiento\": \"Erupción cutánea localizada.\"}\n```"}
	c := NewClassifier(llm, 0)

	got, err := c.Analyze(context.Background(), "tengo una erupción en el brazo")
	require.NoError(t, err)
	assert.Equal(t, doctors.SpecialtyDermatologia, got.Specialty)
}

func TestAnalyzeOutOfEnumFallsBackToGeneral(t *testing.T) {
	llm := &fakeLLM{text: `{"especialidad": "Oncología", "confianza": 90, "razonamiento": "x"}`}
	c := NewClassifier(llm, 0)

	got, err := c.Analyze(context.Background(), "síntomas varios")
	require.NoError(t, err)
	assert.Equal(t, doctors.SpecialtyMedicinaGeneral, got.Specialty)
	assert.LessOrEqual(t, got.Confidence, 50)
}

func TestAnalyzeUnparseableFallsBackToGeneral(t *testing.T) {
	llm := &fakeLLM{text: "no puedo ayudar con eso"}
	c := NewClassifier(llm, 0)

	got, err := c.Analyze(context.Background(), "síntomas varios")
	require.NoError(t, err)
	assert.Equal(t, doctors.SpecialtyMedicinaGeneral, got.Specialty)
	assert.NotEmpty(t, got.Rationale)
}

func TestAnalyzeClampsConfidence(t *testing.T) {
	llm := &fakeLLM{text: `{"especialidad": "Pediatría", "confianza": 140, "razonamiento": "x"}`}
	c := NewClassifier(llm, 0)

	got, err := c.Analyze(context.Background(), "fiebre en un niño de 3 años")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Confidence)
}

func TestAnalyzeEmptySymptoms(t *testing.T) {
	c := NewClassifier(&fakeLLM{}, 0)

	_, err := c.Analyze(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptySymptoms)
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	c := NewClassifier(llm, 0)

	_, err := c.Analyze(context.Background(), "dolor de cabeza")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptySymptoms)
}
