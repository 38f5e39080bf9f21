package loan

import (
	"context"
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	domainLoan "smartlend/internal/domain/loan"
	"smartlend/internal/domain/user"
	"smartlend/internal/storage"
)

type Usecase struct {
	repo  domainLoan.Repository
	files *storage.Store
}

func NewUsecase(r domainLoan.Repository, files *storage.Store) *Usecase {
	return &Usecase{repo: r, files: files}
}

type SubmitInput struct {
	Actor            user.Actor
	FullName         string
	DOB              string
	Address          string
	Email            string
	Amount           float64
	Duration         int
	Period           string
	Objective        string
	RIB              string
	IdentityFilename string
	Identity         io.Reader
}

type LoanDTO struct {
	ID           uint64            `json:"id"`
	UserID       uint64            `json:"user_id"`
	FullName     string            `json:"fullname"`
	Email        string            `json:"email"`
	Amount       float64           `json:"amount"`
	Duration     int               `json:"duration"`
	Period       domainLoan.Period `json:"period"`
	Objective    string            `json:"objective"`
	RIB          string            `json:"rib"`
	Fee          float64           `json:"fee"`
	Interest     float64           `json:"interest"`
	Total        float64           `json:"total"`
	Status       domainLoan.Status `json:"status"`
	ContractFile *string           `json:"contract_file,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

func toDTO(l *domainLoan.LoanApplication) *LoanDTO {
	return &LoanDTO{
		ID:           l.ID,
		UserID:       l.UserID,
		FullName:     l.FullName,
		Email:        l.Email,
		Amount:       l.Amount,
		Duration:     l.Duration,
		Period:       l.Period,
		Objective:    l.Objective,
		RIB:          l.RIB,
		Fee:          l.Fee,
		Interest:     l.Interest,
		Total:        l.Total,
		Status:       l.Status,
		ContractFile: l.ContractFile,
		CreatedAt:    l.CreatedAt,
	}
}

// Submit validates the upload, computes the financial terms once and
// persists the application as pending. The terms are never recomputed
// after this point. A rejected upload aborts before any row is written.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	if in.Actor.Role != user.RoleClient {
		return nil, user.ErrForbidden
	}

	period, err := domainLoan.ParsePeriod(in.Period)
	if err != nil {
		return nil, err
	}
	terms, err := domainLoan.Calculate(in.Amount, in.Duration, period)
	if err != nil {
		return nil, err
	}

	stored, err := u.files.SaveIdentity(in.IdentityFilename, in.Identity)
	if err != nil {
		return nil, err
	}

	l := &domainLoan.LoanApplication{
		UserID:       in.Actor.ID,
		FullName:     in.FullName,
		DOB:          in.DOB,
		Address:      in.Address,
		Email:        in.Email,
		Amount:       in.Amount,
		Duration:     in.Duration,
		Period:       period,
		Objective:    in.Objective,
		RIB:          in.RIB,
		IdentityFile: stored,
		Fee:          terms.Fee,
		Interest:     terms.Interest,
		Total:        terms.Total,
		Status:       domainLoan.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// List returns the actor's own applications; admins see every row.
func (u *Usecase) List(ctx context.Context, actor user.Actor) ([]LoanDTO, error) {
	var (
		rows []domainLoan.LoanApplication
		err  error
	)
	if actor.IsAdmin() {
		rows, err = u.repo.ListAll(ctx)
	} else {
		rows, err = u.repo.ListByUserID(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// Get enforces ownership: a client asking for someone else's loan gets
// ErrNotFound, not ErrForbidden, so existence is not leaked.
func (u *Usecase) Get(ctx context.Context, actor user.Actor, id uint64) (*LoanDTO, error) {
	l, err := u.fetch(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// ContractFile returns the stored contract name for an approved loan.
func (u *Usecase) ContractFile(ctx context.Context, actor user.Actor, id uint64) (string, error) {
	l, err := u.fetch(ctx, actor, id)
	if err != nil {
		return "", err
	}
	if l.Status != domainLoan.StatusApproved || l.ContractFile == nil {
		return "", domainLoan.ErrNoContract
	}
	return *l.ContractFile, nil
}

// IdentityFile returns the stored identity-document name.
func (u *Usecase) IdentityFile(ctx context.Context, actor user.Actor, id uint64) (string, error) {
	l, err := u.fetch(ctx, actor, id)
	if err != nil {
		return "", err
	}
	return l.IdentityFile, nil
}

func (u *Usecase) fetch(ctx context.Context, actor user.Actor, id uint64) (*domainLoan.LoanApplication, error) {
	var (
		l   *domainLoan.LoanApplication
		err error
	)
	if actor.IsAdmin() {
		l, err = u.repo.GetByID(ctx, id)
	} else {
		l, err = u.repo.GetByIDForUser(ctx, id, actor.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}
