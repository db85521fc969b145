package supportchat

import "context"

type ServiceInterface interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

var _ ServiceInterface = (*Service)(nil)
