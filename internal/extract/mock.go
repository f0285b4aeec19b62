package extract

import (
	"context"

	"github.com/kmlxly/splitit-app-sub001/internal/media"
)

// MockInvoker is a scriptable Invoker for tests.
type MockInvoker struct {
	// InvokeFunc handles each call when set.
	InvokeFunc func(ctx context.Context, model, instruction string, payload media.Payload) (string, error)
	// Models records the model identifier of every call, in order.
	Models []string
}

// Invoke records the call and delegates to InvokeFunc.
func (m *MockInvoker) Invoke(ctx context.Context, model, instruction string, payload media.Payload) (string, error) {
	m.Models = append(m.Models, model)
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, model, instruction, payload)
	}
	return "", nil
}
