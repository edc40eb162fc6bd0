package sharing

import "github.com/heartmarshall/cyclecare-backend/internal/domain"

// CreateGrantResult carries the raw token, which is never stored and is
// returned only here.
type CreateGrantResult struct {
	Grant *domain.SharingGrant
	Token string
}
