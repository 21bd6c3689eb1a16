package chat

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Greeting seeds every new transcript. It is shown to the user and flattened
// into later prompts like any other turn, but it is never a reply to anything.
const Greeting = "안녕하세요! 업로드하신 보고서에 대해 궁금한 점이 있으신가요?"

// EmptyReplyApology is returned when the provider answers with no text.
const EmptyReplyApology = "죄송합니다. 답변을 생성할 수 없습니다."

// FailureApology is returned when the chat call itself fails. Chat failures
// are non-fatal; the apology is appended to the transcript as a normal reply.
const FailureApology = "오류가 발생했습니다. 다시 시도해주세요."

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is the transcript entry shape exposed over the API.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// DisplayRole maps the stored eino role onto the user/model pair the
// transcript speaks in.
func DisplayRole(r schema.RoleType) string {
	if r == schema.User {
		return RoleUser
	}
	return RoleModel
}

// FromSchema converts stored messages into API messages, oldest first.
func FromSchema(msgs []*schema.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, Message{Role: DisplayRole(m.Role), Text: m.Content})
	}
	return out
}

// Flatten renders prior turns as one "role: text" line per turn, oldest first,
// for embedding into the chat prompt.
func Flatten(msgs []*schema.Message) string {
	var b strings.Builder
	for i, m := range msgs {
		if m == nil {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(DisplayRole(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
