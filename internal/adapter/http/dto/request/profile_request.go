package request

import (
	"strings"

	"customer_portal/internal/domain/entities"
)

// ProfileRequest is the provisioning payload for the caller's own profile.
// Field-level validation stays upstream; the portal only normalizes
// whitespace.
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ProfileRequest) ToDraft() entities.ProfileDraft {
	return entities.ProfileDraft{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}
