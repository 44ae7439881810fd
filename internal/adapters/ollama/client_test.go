package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
)

func TestClient_Reflect(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		want         string
		wantErr      bool
	}{
		{
			name:         "Success",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"Keep going."}}`,
			want:         "Keep going.",
		},
		{
			name:         "Server error",
			status:       http.StatusInternalServerError,
			responseBody: `{"error":"bad"}`,
			wantErr:      true,
		},
		{
			name:         "Error field in body",
			status:       http.StatusOK,
			responseBody: `{"error":"model not found"}`,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest chatRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/chat" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "")
			reply, err := client.Reflect(context.Background(), "test message")

			if tt.wantErr {
				require.Error(t, err)
				var upstream *domain.UpstreamError
				assert.ErrorAs(t, err, &upstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply)
			assert.Equal(t, DefaultModel, gotRequest.Model)
			assert.False(t, gotRequest.Stream)
			require.Len(t, gotRequest.Messages, 2)
			assert.Equal(t, chatMessage{Role: "system", Content: domain.CounselorPrompt}, gotRequest.Messages[0])
			assert.Equal(t, chatMessage{Role: "user", Content: "test message"}, gotRequest.Messages[1])
		})
	}
}

func TestClient_Reflect_EmptyContent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Reflect(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrEmptyContent)
	assert.False(t, called)
}
