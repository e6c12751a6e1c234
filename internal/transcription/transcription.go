package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// Recognizer turns one WAV segment into text. An empty transcription is not
// an error: silence and unintelligible speech both come back as "".
type Recognizer interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// New picks the recognizer for a run. With no service URL, or with
// USE_MOCK_TRANSCRIBE=true, the offline mock is used.
func New(serviceURL string) Recognizer {
	if serviceURL == "" || os.Getenv("USE_MOCK_TRANSCRIBE") == "true" {
		return MockRecognizer{}
	}
	return &ServiceRecognizer{URL: serviceURL}
}

// MockRecognizer returns a canned transcript keyed to the file name, so runs
// without a speech service stay deterministic.
type MockRecognizer struct{}

func (MockRecognizer) Transcribe(_ context.Context, wavPath string) (string, error) {
	return fmt.Sprintf("mock transcript for %s", filepath.Base(wavPath)), nil
}

type transcribeSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type transcribeResponse struct {
	Segments []transcribeSegment `json:"segments"`
	Language string              `json:"language"`
}

// ServiceRecognizer uploads WAV segments to a speech-to-text HTTP service.
type ServiceRecognizer struct {
	URL string
}

func (s *ServiceRecognizer) Transcribe(ctx context.Context, wavPath string) (string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return "", err
	}
	fd, err := os.Open(wavPath)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(fw, fd); err != nil {
		fd.Close()
		return "", err
	}
	fd.Close()
	if err = w.Close(); err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(s.URL, "/") + "/transcribe"
	body := b.Bytes()

	var resp transcribeResponse
	if err := s.doJSON(ctx, endpoint, w.FormDataContentType(), body, &resp); err != nil {
		return "", fmt.Errorf("transcribe %s: %w", filepath.Base(wavPath), err)
	}

	parts := make([]string, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		if t := strings.TrimSpace(seg.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}

// doJSON posts the request with exponential backoff; 5xx and transport
// errors are retried, 4xx fail immediately.
func (s *ServiceRecognizer) doJSON(ctx context.Context, endpoint, contentType string, body []byte, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", contentType)
		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		rb, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error %s: %s", resp.Status, strings.TrimSpace(string(rb)))
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("request rejected %s: %s", resp.Status, strings.TrimSpace(string(rb))))
		}
		if err := json.Unmarshal(rb, target); err != nil {
			return fmt.Errorf("decode response: %v body=%s", err, string(rb))
		}
		return nil
	}
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
