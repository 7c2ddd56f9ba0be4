package financeflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:4000/", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", client.BaseURL())
	})

	t.Run("options applied", func(t *testing.T) {
		client, err := NewClient("http://localhost:4000", logger,
			WithToken("tok"),
			WithTimeout(5*time.Second),
			WithUserAgent("fflow-test"))
		require.NoError(t, err)
		assert.Equal(t, "tok", client.Token())
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
		assert.Equal(t, "fflow-test", client.userAgent)
	})
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    int
		wantFields  map[string]string
	}{
		{
			name:        "server message and code pass through unchanged",
			status:      http.StatusPaymentRequired,
			body:        `{"message":"Premium required","code":1402}`,
			wantMessage: "Premium required",
			wantCode:    1402,
		},
		{
			name:        "missing code defaults to HTTP status",
			status:      http.StatusUnauthorized,
			body:        `{"message":"Invalid credentials"}`,
			wantMessage: "Invalid credentials",
			wantCode:    http.StatusUnauthorized,
		},
		{
			name:        "field errors preserved",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"Validation failed","errors":{"amount":"must be positive"}}`,
			wantMessage: "Validation failed",
			wantCode:    http.StatusUnprocessableEntity,
			wantFields:  map[string]string{"amount": "must be positive"},
		},
		{
			name:        "unparsable body synthesizes generic error",
			status:      http.StatusBadGateway,
			body:        `<html>upstream down</html>`,
			wantMessage: "request failed with status 502",
			wantCode:    http.StatusBadGateway,
		},
		{
			name:        "empty body synthesizes generic error",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "request failed with status 500",
			wantCode:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetTransaction(context.Background(), "tx1")
			require.Error(t, err)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantFields, apiErr.Fields)
		})
	}
}

func TestNoContentResolvesEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, WithToken("tok"))

	// Declared output type is irrelevant for a 204.
	txs, err := client.ListTransactions(context.Background(), TransactionQuery{})
	require.NoError(t, err)
	assert.Empty(t, txs)

	require.NoError(t, client.DeleteTransaction(context.Background(), "tx1"))
}

func TestBearerHeader(t *testing.T) {
	t.Run("token attached when non-blank", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}, WithToken("secret-token"))

		require.NoError(t, client.do(context.Background(), apiRequest{method: http.MethodGet, path: epWallets}))
		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("no header when token blank", func(t *testing.T) {
		var gotAuth string
		var hasAuth bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, hasAuth = r.Header["Authorization"]
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.do(context.Background(), apiRequest{method: http.MethodGet, path: epCurrencies}))
		assert.Empty(t, gotAuth)
		assert.False(t, hasAuth)
	})
}

func TestRequestBodies(t *testing.T) {
	t.Run("structured body is JSON with content type", func(t *testing.T) {
		var gotContentType string
		var gotBody map[string]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.VerifyEmail(context.Background(), "verify-token")
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, map[string]string{"token": "verify-token"}, gotBody)
	})

	t.Run("caller content type wins", func(t *testing.T) {
		var gotContentType string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.do(context.Background(), apiRequest{
			method:  http.MethodPost,
			path:    epFeedback,
			body:    map[string]string{"subject": "hi"},
			headers: map[string]string{"Content-Type": "application/json; charset=utf-8"},
		})
		require.NoError(t, err)
		assert.Equal(t, "application/json; charset=utf-8", gotContentType)
	})

	t.Run("bodyless read carries no JSON content type", func(t *testing.T) {
		var hasContentType bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, hasContentType = r.Header["Content-Type"]
			w.WriteHeader(http.StatusNoContent)
		})

		err := client.do(context.Background(), apiRequest{
			method:  http.MethodGet,
			path:    epWallets,
			headers: map[string]string{"Content-Type": "application/json"},
		})
		require.NoError(t, err)
		assert.False(t, hasContentType)
	})

	t.Run("accept and request id headers set", func(t *testing.T) {
		var gotAccept, gotRequestID string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			gotRequestID = r.Header.Get("X-Request-Id")
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.do(context.Background(), apiRequest{method: http.MethodGet, path: epCurrencies}))
		assert.Equal(t, "application/json", gotAccept)
		assert.NotEmpty(t, gotRequestID)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success stores token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, epLogin, r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user@example.com", body["email"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "abc",
				"user":  map[string]any{"id": "u1", "email": "user@example.com"},
			})
		})

		result, err := client.Login(context.Background(), "user@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "abc", result.Token)
		assert.Equal(t, "u1", result.User.ID)
		assert.Equal(t, "abc", client.Token())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
		})

		_, err := client.Login(context.Background(), "user@example.com", "wrong")
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
		assert.True(t, apiErr.IsUnauthorized())
		assert.Empty(t, client.Token())
	})
}

func TestGetProfileRequiresToken(t *testing.T) {
	client, err := NewClient("http://localhost:4000", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ListCurrencies(ctx)
	require.Error(t, err)
}

func TestMultipartFeedback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Bug", r.FormValue("subject"))
		assert.Equal(t, "It broke", r.FormValue("message"))

		file, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "shot.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png"), data)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"feedback": map[string]any{"id": "f1", "subject": "Bug"},
		})
	}, WithToken("tok"))

	fb, err := client.CreateFeedback(context.Background(), FeedbackInput{
		Subject:        "Bug",
		Message:        "It broke",
		AttachmentName: "shot.png",
		Attachment:     strings.NewReader("fake-png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", fb.ID)
}

func TestErrorPredicates(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Transaction not found"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid token"}`))
		}
	}
	client := newTestClient(t, handler, WithToken("tok"))

	_, err := client.GetTransaction(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	_, err = client.ListWallets(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))

	assert.False(t, IsNotFound(ErrNotAuthenticated))
	assert.False(t, IsUnauthorized(nil))
}
