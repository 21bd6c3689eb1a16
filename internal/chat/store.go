package chat

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// TranscriptStore keeps the append-only chat transcript of a session. The
// transcript lives exactly as long as the session: it is cleared and re-seeded
// whenever a new upload mints a new session ID.
type TranscriptStore interface {
	// Append adds a message to the end of the session transcript.
	Append(ctx context.Context, sessionID string, message *schema.Message) error

	// Load retrieves the full transcript, oldest first.
	Load(ctx context.Context, sessionID string) ([]*schema.Message, error)

	// Clear removes the session transcript.
	Clear(ctx context.Context, sessionID string) error

	// Len returns the number of messages in the transcript.
	Len(ctx context.Context, sessionID string) (int, error)
}

// Seed resets a session transcript to the fixed greeting.
func Seed(ctx context.Context, store TranscriptStore, sessionID string) error {
	if err := store.Clear(ctx, sessionID); err != nil {
		return err
	}
	return store.Append(ctx, sessionID, schema.AssistantMessage(Greeting, nil))
}
