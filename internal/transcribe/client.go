// Package transcribe wraps the OpenAI audio transcription endpoint used to
// turn a patient's recorded symptom description into text.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config controls how the transcription client behaves.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Language   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client wraps the transcription REST endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	language   string
	httpClient *http.Client
}

// Result is the transcript of one audio clip.
type Result struct {
	Text string `json:"text"`
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("transcribe: API key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "whisper-1"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		language:   strings.TrimSpace(cfg.Language),
		httpClient: httpClient,
	}, nil
}

// Transcribe sends audio bytes to the transcription endpoint. The configured
// language hint improves accuracy for Spanish-speaking patients.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (Result, error) {
	if len(audio) == 0 {
		return Result{}, errors.New("transcribe: empty audio payload")
	}
	if filename == "" {
		filename = "audio.webm"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: build multipart body: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return Result{}, fmt.Errorf("transcribe: write audio part: %w", err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return Result{}, fmt.Errorf("transcribe: write model field: %w", err)
	}
	if c.language != "" {
		if err := mw.WriteField("language", c.language); err != nil {
			return Result{}, fmt.Errorf("transcribe: write language field: %w", err)
		}
	}
	if err := mw.WriteField("temperature", "0.2"); err != nil {
		return Result{}, fmt.Errorf("transcribe: write temperature field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Result{}, fmt.Errorf("transcribe: close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("transcribe: upstream returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("transcribe: decode response: %w", err)
	}
	return result, nil
}
