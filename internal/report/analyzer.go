package report

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/kdi-analyzer/server/internal/core/errx"
	"github.com/kdi-analyzer/server/internal/report/prompts"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

// AnalyzerConfig selects the model used for the extraction call. The pro model
// is the default: the call does document-scale reasoning, not chat.
type AnalyzerConfig struct {
	Model       string  `envconfig:"ANALYSIS_MODEL" default:"gemini-3-pro-preview"`
	MaxTokens   int     `envconfig:"ANALYSIS_MAX_TOKENS" default:"65536"`
	Temperature float32 `envconfig:"ANALYSIS_TEMPERATURE" default:"0.2"`
}

// Analyzer turns an uploaded report into an AnalysisResult with a single
// schema-constrained generation call. One call per invocation, no retry, no
// cancellation; the result is all-or-nothing.
type Analyzer struct {
	client *genai.Client
	cfg    AnalyzerConfig
}

func NewAnalyzer(client *genai.Client, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{client: client, cfg: cfg}
}

// Analyze sends the document bytes and the fixed instruction to the provider
// and parses the JSON reply. Every failure mode maps to one of the closed
// errx kinds; the caller owns user messaging and state reset.
func (a *Analyzer) Analyze(ctx context.Context, doc Document) (*AnalysisResult, error) {
	instruction, err := prompts.RenderAnalysisInstruction(ctx, doc.Name)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(doc.Data, doc.MIMEType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
		Temperature:      genai.Ptr(a.cfg.Temperature),
		MaxOutputTokens:  int32(a.cfg.MaxTokens),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.cfg.Model, contents, genCfg)
	if err != nil {
		logx.Error().Err(err).Str("model", a.cfg.Model).Str("file", doc.Name).Msg("analysis call failed")
		return nil, errx.WrapProvider(err)
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			logx.Warn().
				Str("file", doc.Name).
				Str("block_reason", string(resp.PromptFeedback.BlockReason)).
				Msg("analysis blocked by provider")
			return nil, errx.NewKind(
				fmt.Errorf("provider blocked the request: %s", resp.PromptFeedback.BlockReason),
				http.StatusBadGateway, "provider refused the request", errx.KindRefusal)
		}
		return nil, errx.NewKind(fmt.Errorf("no text in provider reply"),
			http.StatusBadGateway, "provider returned no text", errx.KindEmptyReply)
	}

	result, err := ParseAnalysisResult([]byte(text))
	if err != nil {
		logx.Error().Err(err).Str("file", doc.Name).Msg("analysis reply rejected")
		return nil, err
	}

	logx.Info().
		Str("file", doc.Name).
		Int("facilities", len(result.Charts.SimilarFacilities)).
		Int("plan_areas", len(result.Charts.PlanAreas)).
		Int("alternative_areas", len(result.Charts.AlternativeAreas)).
		Msg("analysis completed")
	return result, nil
}
