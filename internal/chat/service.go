package chat

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/kdi-analyzer/server/internal/report"
	"github.com/kdi-analyzer/server/internal/report/prompts"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

// Config selects the chat model. Flash is the default: follow-up turns trade
// depth for latency.
type Config struct {
	Model       string  `envconfig:"CHAT_MODEL" default:"gemini-3-flash-preview"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"8192"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.4"`
}

// SessionValidator reports whether a session ID is still the active one.
// Replies tagged with a superseded session are discarded on arrival.
type SessionValidator interface {
	Active(sessionID string) bool
}

// generator produces one chat reply. Failures never surface as errors; they
// degrade to a fixed apology string.
type generator interface {
	Reply(ctx context.Context, history []*schema.Message, message string, doc *report.Document) string
}

// Service runs follow-up chat turns about the uploaded report. It is stateless
// with respect to the provider: the context document and the full prior
// transcript are resent on every call.
type Service struct {
	gen      generator
	store    TranscriptStore
	sessions SessionValidator
}

func NewService(client *genai.Client, cfg Config, store TranscriptStore, sessions SessionValidator) *Service {
	return &Service{
		gen:      &geminiGenerator{client: client, cfg: cfg},
		store:    store,
		sessions: sessions,
	}
}

// Send runs one chat turn: append the user message, call the provider with the
// flattened prior transcript plus the context document, append the reply.
// The returned bool is false when the reply was discarded because the session
// rotated while the call was in flight; nothing more is appended in that case.
func (s *Service) Send(ctx context.Context, sessionID, message string, doc *report.Document) (string, bool) {
	history, err := s.store.Load(ctx, sessionID)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to load transcript")
		history = nil
	}

	if err := s.store.Append(ctx, sessionID, schema.UserMessage(message)); err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to append user message")
	}

	reply := s.gen.Reply(ctx, history, message, doc)

	if !s.sessions.Active(sessionID) {
		logx.Warn().Str("sessionID", sessionID).Msg("discarding chat reply for superseded session")
		return "", false
	}

	if err := s.store.Append(ctx, sessionID, schema.AssistantMessage(reply, nil)); err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to append model reply")
	}
	return reply, true
}

type geminiGenerator struct {
	client *genai.Client
	cfg    Config
}

func (g *geminiGenerator) Reply(ctx context.Context, history []*schema.Message, message string, doc *report.Document) string {
	promptText, err := prompts.RenderChatPrompt(ctx, Flatten(history), message)
	if err != nil {
		logx.Error().Err(err).Msg("failed to render chat prompt")
		return FailureApology
	}

	var parts []*genai.Part
	if doc != nil && len(doc.Data) > 0 {
		parts = append(parts, genai.NewPartFromBytes(doc.Data, doc.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(promptText))

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(g.cfg.Temperature),
			MaxOutputTokens: int32(g.cfg.MaxTokens),
		})
	if err != nil {
		logx.Error().Err(err).Str("model", g.cfg.Model).Msg("chat call failed")
		return FailureApology
	}

	text := resp.Text()
	if text == "" {
		logx.Warn().Str("model", g.cfg.Model).Msg("chat call returned no text")
		return EmptyReplyApology
	}
	return text
}
