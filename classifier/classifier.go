// path: classifier/classifier.go

// Package classifier is the gateway to the external severity model. The
// model itself lives behind an inference endpoint; this package only
// owns the single Classify call and the process-wide handle to it.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ClassificationError wraps any failure of the external model: a
// malformed image, an unreachable backend, or a nonsense stage.
// Callers surface it to the user directly; nothing is retried.
type ClassificationError struct {
	Msg string
	Err error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// Classifier turns an uploaded image into an integer severity stage.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (int, error)
}

// HTTPClassifier posts the raw image to the inference service and reads
// back {"stage": n} (or {"error": msg} on failure).
type HTTPClassifier struct {
	url    string
	client *http.Client
}

func NewHTTPClassifier(url string) *HTTPClassifier {
	return &HTTPClassifier{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, image []byte) (int, error) {
	if c.url == "" {
		return 0, &ClassificationError{Msg: "classifier not configured (set CLASSIFIER_URL)"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return 0, &ClassificationError{Msg: "build classify request", Err: err}
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, &ClassificationError{Msg: "classifier unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, &ClassificationError{Msg: "read classifier response", Err: err}
	}

	var out struct {
		Stage int    `json:"stage"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, &ClassificationError{Msg: "decode classifier response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = fmt.Sprintf("classifier returned status %d", resp.StatusCode)
		}
		return 0, &ClassificationError{Msg: msg}
	}
	if out.Stage < 1 {
		return 0, &ClassificationError{Msg: fmt.Sprintf("classifier returned invalid stage %d", out.Stage)}
	}
	return out.Stage, nil
}

// The model handle is loaded once at startup and lives for the whole
// process; there is no teardown.
var defaultClassifier Classifier

// Init installs the process-wide classifier handle.
func Init(url string) {
	if url == "" {
		log.Printf("classifier: CLASSIFIER_URL not set; /api/predict will fail until configured")
	} else {
		log.Printf("classifier: using inference endpoint %s", url)
	}
	defaultClassifier = NewHTTPClassifier(url)
}

// Default returns the process-wide classifier handle.
func Default() Classifier {
	if defaultClassifier == nil {
		panic("classifier not initialized: call classifier.Init first")
	}
	return defaultClassifier
}
