// Package notifier delivers the approval mail, contract attached, over
// an authenticated STARTTLS session. Without credentials it degrades to
// a simulation that only logs.
package notifier

import (
	"context"
	"fmt"
	"log"
	"os"

	gomail "gopkg.in/gomail.v2"

	"smartlend/internal/domain/loan"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	cfg  Config
	send func(m *gomail.Message) error
}

func New(cfg Config) *Mailer {
	m := &Mailer{cfg: cfg}
	m.send = func(msg *gomail.Message) error {
		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		// gomail upgrades to STARTTLS on port 587 before LOGIN
		return d.DialAndSend(msg)
	}
	return m
}

// Send reports delivery as a plain boolean; transport errors are logged
// and never propagate to the approval workflow. With no password
// configured the message is logged instead of sent and Send still
// reports success, so callers cannot tell simulation from delivery.
func (m *Mailer) Send(ctx context.Context, to string, l *loan.LoanApplication, contractPath string) bool {
	subject := "SmartLend - Your loan application has been approved"
	body := fmt.Sprintf(`Hello %s,

We are pleased to inform you that your loan application has been approved.

Details:
- Requested amount: %.2f EUR
- Origination fee: %.2f EUR
- Interest: %.2f EUR
- Total repayment: %.2f EUR
- Bank account (RIB): %s

You will find the official agreement attached.

Best regards,
The SmartLend team
`, l.FullName, l.Amount, l.Fee, l.Interest, l.Total, l.RIB)

	if m.cfg.Password == "" {
		log.Printf("[EMAIL SIMULATION] To: %s", to)
		log.Printf("Subject: %s", subject)
		log.Print(body)
		return true
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if contractPath != "" {
		if _, err := os.Stat(contractPath); err == nil {
			msg.Attach(contractPath)
		}
	}

	if err := m.send(msg); err != nil {
		log.Printf("mail send failed: %v", err)
		return false
	}
	return true
}
