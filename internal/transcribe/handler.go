package transcribe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/internal/observability/metrics"
	"github.com/JoseGaldamez/hackathon-uth-asistente-ia/pkg/logging"
)

// maxAudioBytes caps uploads at 25MB, the upstream endpoint limit.
const maxAudioBytes = 25 << 20

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (Result, error)
}

// Handler exposes audio transcription over HTTP.
type Handler struct {
	transcriber Transcriber
	metrics     *metrics.BookingMetrics
	logger      *logging.Logger
}

// NewHandler creates a new transcription handler.
func NewHandler(transcriber Transcriber, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{transcriber: transcriber, metrics: m, logger: logger}
}

// TranscribeResponse is the response body for a transcription request.
type TranscribeResponse struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
}

// Post handles POST /api/transcribe multipart requests with an "audio" file part.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		http.Error(w, `{"error": "invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, `{"error": "no audio file provided"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil || len(audio) == 0 {
		http.Error(w, `{"error": "empty audio file"}`, http.StatusBadRequest)
		return
	}

	result, err := h.transcriber.Transcribe(r.Context(), header.Filename, audio)
	if err != nil {
		h.metrics.ObserveTranscription("error")
		h.logger.Error("transcription failed", "error", err, "filename", header.Filename)
		http.Error(w, `{"error": "error al transcribir el audio, intente de nuevo"}`, http.StatusBadGateway)
		return
	}

	h.metrics.ObserveTranscription("ok")
	h.logger.Info("audio transcribed", "filename", header.Filename, "bytes", len(audio), "chars", len(result.Text))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TranscribeResponse{Text: result.Text, Success: true}); err != nil {
		h.logger.Error("failed to encode transcription response", "error", err)
	}
}
