package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	generativeAI "github.com/FACorreiaa/go-travel-itinerary/internal/api/generative_ai"
)

const assistantPrompt = "You are a travel assistant for India. Location: %s.\nUser: %s\nGive detailed and friendly travel suggestions."

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetReply(ctx context.Context, message, location, userLocation string) string
}

// ServiceImpl proxies chat messages to the AI model. Model faults are
// folded into the reply string so the endpoint never fails.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient generativeAI.Client
}

func NewServiceImpl(aiClient generativeAI.Client, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
	}
}

func (s *ServiceImpl) GetReply(ctx context.Context, message, location, userLocation string) string {
	locationInfo := location
	if userLocation != "" {
		locationInfo = fmt.Sprintf("%s (User is at %s)", location, userLocation)
	}
	if locationInfo == "" {
		locationInfo = "unspecified"
	}

	prompt := fmt.Sprintf(assistantPrompt, locationInfo, message)
	reply, err := s.aiClient.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "AI chat request failed", slog.Any("error", err))
		return fmt.Sprintf("Error: %v", err)
	}
	return strings.TrimSpace(reply)
}
