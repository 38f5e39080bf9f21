package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanApplication) error
	GetByID(ctx context.Context, id uint64) (*LoanApplication, error)
	// GetByIDForUser scopes the lookup to the owning user (clients must
	// never see another applicant's loan).
	GetByIDForUser(ctx context.Context, id, userID uint64) (*LoanApplication, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*LoanApplication, error)
	ListAll(ctx context.Context) ([]LoanApplication, error)
	ListByUserID(ctx context.Context, userID uint64) ([]LoanApplication, error)
	Save(ctx context.Context, l *LoanApplication) error
}
