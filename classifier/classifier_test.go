// path: classifier/classifier_test.go
package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReturnsStage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stage": 3}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	stage, err := c.Classify(context.Background(), []byte("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, 3, stage)
}

func TestClassifyBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "malformed image"}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	_, err := c.Classify(context.Background(), []byte("not an image"))
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Error(), "malformed image")
}

func TestClassifyInvalidStage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stage": 0}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	_, err := c.Classify(context.Background(), []byte("jpegdata"))
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
}

func TestClassifyUnconfigured(t *testing.T) {
	c := NewHTTPClassifier("")
	_, err := c.Classify(context.Background(), []byte("jpegdata"))
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
}

func TestClassifyUnreachable(t *testing.T) {
	c := NewHTTPClassifier("http://127.0.0.1:1/classify")
	_, err := c.Classify(context.Background(), []byte("jpegdata"))
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
}
