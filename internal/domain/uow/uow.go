package uow

import (
	"context"

	"smartlend/internal/domain/loan"
	"smartlend/internal/domain/user"
)

type Repos struct {
	Users user.Repository
	Loans loan.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with repositories bound to one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
