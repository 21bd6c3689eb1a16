package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/analysis_instruction.txt
var analysisInstruction string

//go:embed template/chat_prompt.txt
var chatPrompt string

// RenderAnalysisInstruction renders the fixed analysis instruction that rides
// along with the PDF payload. Rendering goes through the Eino prompt component
// so prompt callbacks fire the same way for every provider call.
func RenderAnalysisInstruction(ctx context.Context, fileName string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(analysisInstruction),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"FileName": fileName,
	})
	if err != nil {
		return "", fmt.Errorf("analysis instruction render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("analysis instruction render: empty result")
	}
	return msgs[0].Content, nil
}

// RenderChatPrompt flattens the system instruction, the prior transcript and
// the new user message into the single text block sent on every chat turn.
func RenderChatPrompt(ctx context.Context, history, message string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.UserMessage(chatPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"History": history,
		"Message": message,
	})
	if err != nil {
		return "", fmt.Errorf("chat prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("chat prompt render: empty result")
	}
	return msgs[0].Content, nil
}
