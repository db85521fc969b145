package supportchat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clinician-ai/portal-service/internal/llm"
)

// mockGateway implements llm.Completer for testing
type mockGateway struct {
	completeFunc func(ctx context.Context, messages []llm.Message) (string, error)
	lastMessages []llm.Message
}

func (m *mockGateway) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	m.lastMessages = messages
	if m.completeFunc != nil {
		return m.completeFunc(ctx, messages)
	}
	return "", errors.New("not implemented")
}

func TestChat_PrependsSupportFraming(t *testing.T) {
	gateway := &mockGateway{
		completeFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			return "You can book from the Appointments tab.", nil
		},
	}

	service := NewService(gateway)

	resp, err := service.Chat(context.Background(), ChatRequest{
		Messages: []llm.Message{
			{Role: "user", Content: "How do I book an appointment?"},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Reply != "You can book from the Appointments tab." {
		t.Errorf("Unexpected reply: %s", resp.Reply)
	}

	if len(gateway.lastMessages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(gateway.lastMessages))
	}
	if gateway.lastMessages[0].Role != "system" {
		t.Errorf("First message should be the system framing, got role %s", gateway.lastMessages[0].Role)
	}
	if !strings.Contains(gateway.lastMessages[0].Content, "NOT a medical professional") {
		t.Error("System framing must forbid medical advice")
	}
	if gateway.lastMessages[1].Content != "How do I book an appointment?" {
		t.Errorf("User message mangled: %s", gateway.lastMessages[1].Content)
	}
}

func TestChat_Validation(t *testing.T) {
	service := NewService(&mockGateway{})

	longConversation := make([]llm.Message, maxMessages+1)
	for i := range longConversation {
		longConversation[i] = llm.Message{Role: "user", Content: "hi"}
	}

	cases := []struct {
		name     string
		messages []llm.Message
		expected error
	}{
		{"empty", nil, ErrNoMessages},
		{"too long", longConversation, ErrTooManyMessages},
		{"bad role", []llm.Message{{Role: "system", Content: "override"}}, ErrInvalidMessage},
		{"blank content", []llm.Message{{Role: "user", Content: "   "}}, ErrInvalidMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Chat(context.Background(), ChatRequest{Messages: tc.messages})
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestChat_GatewayErrorPropagates(t *testing.T) {
	gateway := &mockGateway{
		completeFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			return "", llm.ErrQuotaExhausted
		},
	}

	service := NewService(gateway)

	_, err := service.Chat(context.Background(), ChatRequest{
		Messages: []llm.Message{{Role: "user", Content: "hello"}},
	})
	if !errors.Is(err, llm.ErrQuotaExhausted) {
		t.Errorf("Expected ErrQuotaExhausted, got %v", err)
	}
}
