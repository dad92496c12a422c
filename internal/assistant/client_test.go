package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "legalbot/internal/errors"
)

// TestClient_Chat is a unit test for the chat endpoint of our HTTP client.
//
// TECHNIQUE: We use the `net/http/httptest` package to create a mock HTTP
// server that stands in for the real LegalBot API. This lets us verify
// exactly what the client sends and how it handles each kind of response,
// with no real network calls.
func TestClient_Chat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody ChatRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"reply":"A tort is a civil wrong."}`))
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL, Token: "secret"})
		resp, err := client.Chat(context.Background(), "What is a tort?")

		require.NoError(t, err)
		assert.Equal(t, "A tort is a civil wrong.", resp.Reply)
		assert.Equal(t, "/v1/api/chat", gotPath)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "What is a tort?", gotBody.Message)
	})

	t.Run("Failure - non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.Chat(context.Background(), "hello")

		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})

	t.Run("Failure - missing reply field is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"answer":"wrong shape"}`))
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.Chat(context.Background(), "hello")

		assert.ErrorIs(t, err, app_errors.ErrMalformedResponse)
	})

	t.Run("Failure - connection refused", func(t *testing.T) {
		// A server that is immediately closed guarantees a transport error.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.Chat(context.Background(), "hello")

		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})
}

func TestClient_UploadFile(t *testing.T) {
	t.Run("Success - multipart body round-trips", func(t *testing.T) {
		var gotFilename, gotContent string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			gotFilename = header.Filename
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			gotContent = string(content)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"ok","filename":"contract.pdf","chunks_count":4}`))
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		resp, err := client.UploadFile(context.Background(), "contract.pdf", strings.NewReader("%PDF-1.4 fake"))

		require.NoError(t, err)
		assert.Equal(t, "contract.pdf", resp.Filename)
		assert.Equal(t, 4, resp.ChunksCount)
		assert.Equal(t, "contract.pdf", gotFilename)
		assert.Equal(t, "%PDF-1.4 fake", gotContent)
	})

	t.Run("Failure - 413 surfaces the server detail", func(t *testing.T) {
		detail := "File size exceeds maximum allowed size of 1MB. Your file is 2.00MB"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.UploadFile(context.Background(), "big.pdf", strings.NewReader("x"))

		assert.ErrorIs(t, err, app_errors.ErrPayloadTooLarge)
		var tooLarge *PayloadTooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, detail, tooLarge.Detail)
	})

	t.Run("Failure - 413 without detail falls back to a fixed message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.UploadFile(context.Background(), "big.pdf", strings.NewReader("x"))

		var tooLarge *PayloadTooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, "File size exceeds maximum allowed size", tooLarge.Detail)
	})

	t.Run("Failure - missing filename is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"ok","chunks_count":1}`))
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})
		_, err := client.UploadFile(context.Background(), "contract.pdf", strings.NewReader("x"))

		assert.ErrorIs(t, err, app_errors.ErrMalformedResponse)
	})
}

func TestClient_Stats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/api/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collection_name":"legal_documents","document_count":12,"stats":{"rows":12}}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	resp, err := client.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "legal_documents", resp.CollectionName)
	assert.Equal(t, 12, resp.DocumentCount)
}

func TestClient_ClearDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/api/clear", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"All documents cleared successfully"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	resp, err := client.ClearDocuments(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "All documents cleared successfully", resp.Message)
}
