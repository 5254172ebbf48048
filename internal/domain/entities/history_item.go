package entities

// HistoryStatus is the service-history status enumeration.
//
// The wire representation is an open string: records may arrive with values
// outside the four known constants and must stay representable as-is. Use
// Recognized() before treating a value as one of the closed set so unknown
// statuses never get silently rendered like OPEN.

type HistoryStatus string

const (
	HistoryStatusOpen       HistoryStatus = "OPEN"
	HistoryStatusInProgress HistoryStatus = "IN_PROGRESS"
	HistoryStatusDone       HistoryStatus = "DONE"
	HistoryStatusCancelled  HistoryStatus = "CANCELLED"
)

// Recognized reports whether s is one of the closed set of statuses.
func (s HistoryStatus) Recognized() bool {
	switch s {
	case HistoryStatusOpen, HistoryStatusInProgress, HistoryStatusDone, HistoryStatusCancelled:
		return true
	}
	return false
}

// VehicleSummary is the denormalized vehicle snapshot the upstream service
// embeds in a history record. It is supplied upstream, never joined locally.
type VehicleSummary struct {
	Make    string `json:"make,omitempty"`
	Model   string `json:"model,omitempty"`
	PlateNo string `json:"plateNo,omitempty"`
}

// HistoryItem is one service event for the logged-in customer.
//
// CompletedAt stays an ISO-8601 string (e.g. "2025-10-29T12:30:00Z") to keep
// ordering wire-compatible with the upstream service; nil means not yet
// completed. Cost is nil when unknown/not billed.
type HistoryItem struct {
	ID          string          `json:"id,omitempty"`
	VehicleID   string          `json:"vehicleId,omitempty"`
	Title       string          `json:"title"`
	Status      HistoryStatus   `json:"status"`
	CompletedAt *string         `json:"completedAt,omitempty"`
	Cost        *float64        `json:"cost,omitempty"`
	Vehicle     *VehicleSummary `json:"vehicle,omitempty"`
}
