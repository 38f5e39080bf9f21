package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidStatus     = errors.New("status must be approved or rejected")
	ErrInvalidTransition = errors.New("loan is not pending")
	ErrNoContract        = errors.New("no contract for this loan")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CanTransitionTo encodes the lifecycle: pending is the only state with
// outgoing edges; approved and rejected are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

type Period string

const (
	PeriodMonthly    Period = "monthly"
	PeriodQuarterly  Period = "quarterly"
	PeriodSemiannual Period = "semiannual"
	PeriodAnnual     Period = "annual"
)

// Months returns the repayment cadence in months, 0 for unknown periods.
func (p Period) Months() int {
	switch p {
	case PeriodMonthly:
		return 1
	case PeriodQuarterly:
		return 3
	case PeriodSemiannual:
		return 6
	case PeriodAnnual:
		return 12
	}
	return 0
}

func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if p.Months() == 0 {
		return "", ErrUnknownPeriod
	}
	return p, nil
}

type LoanApplication struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_loans_user" json:"user_id"`
	FullName     string    `gorm:"column:fullname;size:255;not null" json:"fullname"`
	DOB          string    `gorm:"column:dob;size:32" json:"dob"`
	Address      string    `gorm:"column:address;size:512" json:"address"`
	Email        string    `gorm:"column:email;size:255;not null" json:"email"`
	Amount       float64   `gorm:"column:amount;type:double;not null" json:"amount"`
	Duration     int       `gorm:"column:duration;not null" json:"duration"`
	Period       Period    `gorm:"column:period;size:16;not null" json:"period"`
	Objective    string    `gorm:"column:objective;type:text" json:"objective"`
	RIB          string    `gorm:"column:rib;size:64" json:"rib"`
	IdentityFile string    `gorm:"column:identity_file;size:255;not null" json:"identity_file"`
	Fee          float64   `gorm:"column:fee;type:double;not null" json:"fee"`
	Interest     float64   `gorm:"column:interest;type:double;not null" json:"interest"`
	Total        float64   `gorm:"column:total;type:double;not null" json:"total"`
	Status       Status    `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ContractFile *string   `gorm:"column:contract_file;size:255" json:"contract_file,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loans" }
