package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

type stubChatService struct {
	reply string
}

func (s *stubChatService) GetReply(_ context.Context, _, _, _ string) string {
	return s.reply
}

func TestChatHandler(t *testing.T) {
	handler := NewHandler(&stubChatService{reply: "Visit the City Palace first."}, testLogger())

	body := `{"message": "what should I see?", "location": "Jaipur"}`
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Visit the City Palace first.", resp.Reply)
}

func TestChatHandler_InvalidJSON(t *testing.T) {
	handler := NewHandler(&stubChatService{reply: "unused"}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
