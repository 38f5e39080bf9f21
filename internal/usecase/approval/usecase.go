package approval

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	domainLoan "smartlend/internal/domain/loan"
	"smartlend/internal/domain/uow"
	"smartlend/internal/domain/user"
)

// ContractGenerator renders the agreement and returns the written path.
type ContractGenerator interface {
	Generate(l *domainLoan.LoanApplication) (string, error)
}

// Notifier reports delivery as a boolean and never returns an error.
type Notifier interface {
	Send(ctx context.Context, to string, l *domainLoan.LoanApplication, contractPath string) bool
}

type Usecase struct {
	uow       uow.UnitOfWork
	contracts ContractGenerator
	notifier  Notifier
}

func NewUsecase(tx uow.UnitOfWork, contracts ContractGenerator, notifier Notifier) *Usecase {
	return &Usecase{uow: tx, contracts: contracts, notifier: notifier}
}

type ChangeStatusInput struct {
	LoanID    uint64
	NewStatus domainLoan.Status
	Actor     user.Actor
}

type Result struct {
	Loan *domainLoan.LoanApplication
	// NotificationTried is true only for approvals; NotificationSent
	// false with Tried true is the partial-success case the caller must
	// surface as a warning.
	NotificationTried bool
	NotificationSent  bool
}

// ChangeStatus drives the approval state machine. Status change and
// contract persistence commit in one transaction; the mail goes out
// after commit so a transport failure can never unwind them.
func (u *Usecase) ChangeStatus(ctx context.Context, in ChangeStatusInput) (*Result, error) {
	if !in.Actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	if in.NewStatus != domainLoan.StatusApproved && in.NewStatus != domainLoan.StatusRejected {
		return nil, domainLoan.ErrInvalidStatus
	}

	var (
		l            *domainLoan.LoanApplication
		contractPath string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		got, err := r.Loans.GetByIDForUpdate(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}

		if !got.Status.CanTransitionTo(in.NewStatus) {
			return domainLoan.ErrInvalidTransition
		}
		got.Status = in.NewStatus

		if in.NewStatus == domainLoan.StatusApproved {
			path, err := u.contracts.Generate(got)
			if err != nil {
				// abort: contract_file is set iff approved AND generation succeeded
				return fmt.Errorf("generate contract: %w", err)
			}
			contractPath = path
			name := filepath.Base(path)
			got.ContractFile = &name
		}

		if err := r.Loans.Save(ctx, got); err != nil {
			return err
		}
		l = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Loan: l}
	if in.NewStatus == domainLoan.StatusApproved {
		res.NotificationTried = true
		res.NotificationSent = u.notifier.Send(ctx, l.Email, l, contractPath)
	}
	return res, nil
}
