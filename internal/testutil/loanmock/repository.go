package loanmock

import (
	"context"

	domain "smartlend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the fields a test needs.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.LoanApplication) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	GetByIDForUserFn   func(ctx context.Context, id, userID uint64) (*domain.LoanApplication, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	ListAllFn          func(ctx context.Context) ([]domain.LoanApplication, error)
	ListByUserIDFn     func(ctx context.Context, userID uint64) ([]domain.LoanApplication, error)
	SaveFn             func(ctx context.Context, l *domain.LoanApplication) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUser(ctx context.Context, id, userID uint64) (*domain.LoanApplication, error) {
	if m.GetByIDForUserFn != nil {
		return m.GetByIDForUserFn(ctx, id, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.LoanApplication, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
