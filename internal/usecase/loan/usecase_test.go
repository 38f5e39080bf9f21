package loan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	domainLoan "smartlend/internal/domain/loan"
	"smartlend/internal/domain/user"
	"smartlend/internal/storage"
	"smartlend/internal/testutil/loanmock"
)

var (
	client = user.Actor{ID: 7, Role: user.RoleClient}
	admin  = user.Actor{ID: 1, Role: user.RoleAdmin}
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return s
}

func submitInput() SubmitInput {
	return SubmitInput{
		Actor:            client,
		FullName:         "Jean Dupont",
		DOB:              "1988-06-15",
		Address:          "12 rue des Lilas, Paris",
		Email:            "jean@example.com",
		Amount:           10000,
		Duration:         12,
		Period:           "monthly",
		Objective:        "car purchase",
		RIB:              "FR7612345678901234567890123",
		IdentityFilename: "card.pdf",
		Identity:         strings.NewReader("%PDF-1.4 fake"),
	}
}

func TestSubmitComputesTermsOnce(t *testing.T) {
	var created *domainLoan.LoanApplication
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.LoanApplication) error {
			l.ID = 1
			created = l
			return nil
		},
	}
	uc := NewUsecase(repo, newStore(t))

	dto, err := uc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created == nil {
		t.Fatal("loan was not persisted")
	}
	if created.Status != domainLoan.StatusPending {
		t.Fatalf("new loan must be pending, got %s", created.Status)
	}
	if created.Fee != 500 || created.Interest != 1200 || created.Total != 11700 {
		t.Fatalf("terms mismatch: fee=%v interest=%v total=%v", created.Fee, created.Interest, created.Total)
	}
	if created.UserID != client.ID {
		t.Fatalf("owner mismatch: %d", created.UserID)
	}
	if created.IdentityFile == "" {
		t.Fatal("identity file reference missing")
	}
	if dto.Status != domainLoan.StatusPending || dto.ContractFile != nil {
		t.Fatalf("dto mismatch: %+v", dto)
	}
}

func TestSubmitRejectsBadUploadBeforePersisting(t *testing.T) {
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.LoanApplication) error {
			t.Fatal("no loan row may be created for a rejected upload")
			return nil
		},
	}
	uc := NewUsecase(repo, newStore(t))

	in := submitInput()
	in.IdentityFilename = "card.exe"
	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, storage.ErrBadExtension) {
		t.Fatalf("want ErrBadExtension, got %v", err)
	}
}

func TestSubmitGuards(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantErr error
	}{
		{"admin cannot apply", func(in *SubmitInput) { in.Actor = admin }, user.ErrForbidden},
		{"unknown period", func(in *SubmitInput) { in.Period = "weekly" }, domainLoan.ErrUnknownPeriod},
		{"zero amount", func(in *SubmitInput) { in.Amount = 0 }, domainLoan.ErrInvalidTerms},
		{"negative amount", func(in *SubmitInput) { in.Amount = -50 }, domainLoan.ErrInvalidTerms},
		{"zero duration", func(in *SubmitInput) { in.Duration = 0 }, domainLoan.ErrInvalidTerms},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &loanmock.Repo{
				CreateFn: func(ctx context.Context, l *domainLoan.LoanApplication) error {
					t.Fatal("guard failure must not persist anything")
					return nil
				},
			}
			uc := NewUsecase(repo, newStore(t))
			in := submitInput()
			tt.mutate(&in)
			if _, err := uc.Submit(context.Background(), in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestListByRole(t *testing.T) {
	repo := &loanmock.Repo{
		ListAllFn: func(ctx context.Context) ([]domainLoan.LoanApplication, error) {
			return []domainLoan.LoanApplication{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, nil
		},
		ListByUserIDFn: func(ctx context.Context, userID uint64) ([]domainLoan.LoanApplication, error) {
			if userID != client.ID {
				t.Fatalf("client list queried with user %d", userID)
			}
			return []domainLoan.LoanApplication{{ID: 1, UserID: 7}}, nil
		},
	}
	uc := NewUsecase(repo, newStore(t))

	mine, err := uc.List(context.Background(), client)
	if err != nil {
		t.Fatalf("List(client): %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != client.ID {
		t.Fatalf("client sees %+v", mine)
	}

	all, err := uc.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("List(admin): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees %d rows", len(all))
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := &loanmock.Repo{
		GetByIDForUserFn: func(ctx context.Context, id, userID uint64) (*domainLoan.LoanApplication, error) {
			if userID == 7 {
				return &domainLoan.LoanApplication{ID: id, UserID: 7}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByIDFn: func(ctx context.Context, id uint64) (*domainLoan.LoanApplication, error) {
			return &domainLoan.LoanApplication{ID: id, UserID: 7}, nil
		},
	}
	uc := NewUsecase(repo, newStore(t))

	if _, err := uc.Get(context.Background(), client, 1); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	stranger := user.Actor{ID: 8, Role: user.RoleClient}
	if _, err := uc.Get(context.Background(), stranger, 1); !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("stranger Get: want ErrNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), admin, 1); err != nil {
		t.Fatalf("admin Get: %v", err)
	}
}

func TestContractFile(t *testing.T) {
	name := "contract_1.pdf"
	tests := []struct {
		name    string
		loan    domainLoan.LoanApplication
		wantErr error
	}{
		{"approved with contract", domainLoan.LoanApplication{ID: 1, UserID: 7, Status: domainLoan.StatusApproved, ContractFile: &name}, nil},
		{"pending", domainLoan.LoanApplication{ID: 1, UserID: 7, Status: domainLoan.StatusPending}, domainLoan.ErrNoContract},
		{"rejected", domainLoan.LoanApplication{ID: 1, UserID: 7, Status: domainLoan.StatusRejected}, domainLoan.ErrNoContract},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &loanmock.Repo{
				GetByIDForUserFn: func(ctx context.Context, id, userID uint64) (*domainLoan.LoanApplication, error) {
					l := tt.loan
					return &l, nil
				},
			}
			uc := NewUsecase(repo, newStore(t))
			got, err := uc.ContractFile(context.Background(), client, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && got != name {
				t.Fatalf("got %q", got)
			}
		})
	}
}
