package supportchat

import (
	"context"
	"errors"
	"strings"

	"github.com/clinician-ai/portal-service/internal/llm"
)

const maxMessages = 40

// supportPrompt frames the assistant for portal navigation questions only.
const supportPrompt = `You are a friendly support assistant for ClinicianAI, an online healthcare portal.
You help patients and doctors navigate the portal: booking appointments, viewing prescriptions,
updating their medical history, and using the symptom checker.

IMPORTANT RULES:
- You are NOT a medical professional. Never give medical advice, diagnoses, or treatment suggestions.
- If asked a medical question, politely direct the user to the symptom checker or to book an appointment with a doctor.
- Keep answers short and practical.`

var (
	ErrNoMessages      = errors.New("at least one message is required")
	ErrTooManyMessages = errors.New("conversation is too long")
	ErrInvalidMessage  = errors.New("each message requires a role and content")
)

// ChatRequest carries the conversation so far, oldest message first
type ChatRequest struct {
	Messages []llm.Message `json:"messages"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

type Service struct {
	gateway llm.Completer
}

func NewService(gateway llm.Completer) *Service {
	return &Service{gateway: gateway}
}

// Chat sends the conversation to the gateway with the support framing prepended
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}
	if len(req.Messages) > maxMessages {
		return nil, ErrTooManyMessages
	}
	for _, m := range req.Messages {
		if (m.Role != "user" && m.Role != "assistant") || strings.TrimSpace(m.Content) == "" {
			return nil, ErrInvalidMessage
		}
	}

	messages := make([]llm.Message, 0, len(req.Messages)+1)
	messages = append(messages, llm.Message{Role: "system", Content: supportPrompt})
	messages = append(messages, req.Messages...)

	reply, err := s.gateway.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}
	return &ChatResponse{Reply: reply}, nil
}
