package notifiermock

import (
	"context"

	domain "smartlend/internal/domain/loan"
)

// Notifier is a function-backed mock; the zero value reports success.
type Notifier struct {
	SendFn func(ctx context.Context, to string, l *domain.LoanApplication, contractPath string) bool
	Calls  int
}

func (m *Notifier) Send(ctx context.Context, to string, l *domain.LoanApplication, contractPath string) bool {
	m.Calls++
	if m.SendFn != nil {
		return m.SendFn(ctx, to, l, contractPath)
	}
	return true
}

// Generator is a function-backed contract-generator mock; the zero
// value reports a fixed path.
type Generator struct {
	GenerateFn func(l *domain.LoanApplication) (string, error)
	Calls      int
}

func (m *Generator) Generate(l *domain.LoanApplication) (string, error) {
	m.Calls++
	if m.GenerateFn != nil {
		return m.GenerateFn(l)
	}
	return "uploads/contract_0.pdf", nil
}
