package response

import (
	"customer_portal/internal/domain/entities"
)

type ProfileResponse struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

func FromCustomerProfile(p entities.CustomerProfile) ProfileResponse {
	return ProfileResponse{
		ID:     p.ID,
		UserID: p.UserID,
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
	}
}
