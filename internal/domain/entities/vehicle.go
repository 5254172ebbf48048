package entities

// Vehicle is a customer-owned vehicle record, read-only from the portal's
// perspective; fetched fresh on each load.
type Vehicle struct {
	ID             string `json:"id,omitempty"`
	CustomerUserID string `json:"customerUserId,omitempty"`
	Make           string `json:"make,omitempty"`
	Model          string `json:"model,omitempty"`
	PlateNo        string `json:"plateNo,omitempty"`
	Year           *int   `json:"year,omitempty"`
}
