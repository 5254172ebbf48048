package entities

// CustomerProfile is the customer's own identity/contact record, at most one
// per authenticated user.
//
// The upstream customer service owns this record; the portal only reads it
// and triggers creation. Absent until provisioned, refreshed by re-read,
// never mutated locally.
type CustomerProfile struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// ProfileDraft is the caller-supplied payload for provisioning a profile.
type ProfileDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
