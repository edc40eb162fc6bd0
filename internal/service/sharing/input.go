package sharing

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// CreateGrantInput names the partner account and the shared categories.
type CreateGrantInput struct {
	PartnerEmail string
	Options      domain.SharedOptions
}

func (i *CreateGrantInput) Validate() error {
	i.PartnerEmail = strings.ToLower(strings.TrimSpace(i.PartnerEmail))
	if i.PartnerEmail == "" {
		return domain.NewValidationError("partner_email", "required")
	}
	if _, err := mail.ParseAddress(i.PartnerEmail); err != nil {
		return domain.NewValidationError("partner_email", "invalid email format")
	}
	return nil
}
