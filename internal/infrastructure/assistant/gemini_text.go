package assistant

import (
	"context"
	"errors"
	"fmt"

	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/infrastructure/config"
	"sparkle_shine/internal/usecase/interfaces"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

// ErrNotConfigured is returned by every gateway call when no API key is set.
var ErrNotConfigured = errors.New("gemini: not configured")

const textPersona = `You are "Bubbles", the friendly AI assistant for Sparkle & Shine Cleaning Services in Yonkers, NY.
You are cute, helpful, and love talking about a clean home.
Always mention that we serve Yonkers and surrounding Westchester areas.
Your goal is to answer questions about our services (Standard, Deep, Move In/Out) and provide cleaning tips.
Keep responses concise and use emojis.
If they ask for a price, tell them to use our interactive estimate tool on the page.`

const textTemperature float32 = 0.7

// NewClient returns nil without an API key; the gateways then report
// ErrNotConfigured instead of failing at startup.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return client, nil
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiTextGateway answers text turns with the Bubbles persona.
type GeminiTextGateway struct {
	models contentGenerator
	model  string
}

var _ interfaces.IAssistantGateway = (*GeminiTextGateway)(nil)

func NewGeminiTextGateway(client *genai.Client, cfg config.GeminiConfig) *GeminiTextGateway {
	g := &GeminiTextGateway{model: cfg.TextModel}
	if client != nil {
		g.models = client.Models
	}
	return g
}

func (g *GeminiTextGateway) GenerateReply(ctx context.Context, history []entities.ChatMessage) (string, error) {
	if g.models == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.models.GenerateContent(ctx, g.model, toContents(history), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(textPersona, genai.RoleUser),
		Temperature:       genai.Ptr(textTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}

func toContents(history []entities.ChatMessage) []*genai.Content {
	return lo.Map(history, func(m entities.ChatMessage, _ int) *genai.Content {
		role := genai.Role(genai.RoleUser)
		if m.Role == entities.ChatRoleModel {
			role = genai.RoleModel
		}
		return genai.NewContentFromText(m.Text, role)
	})
}
