package response

import (
	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase"
)

// Presentation classes for the status badge. Unrecognized statuses get their
// own class instead of borrowing the OPEN styling, so upstream data-quality
// problems stay visible.
const (
	StatusClassOpen       = "open"
	StatusClassInProgress = "in-progress"
	StatusClassDone       = "done"
	StatusClassCancelled  = "cancelled"
	StatusClassUnknown    = "unknown"
)

type HistoryVehicleResponse struct {
	Make    string `json:"make,omitempty"`
	Model   string `json:"model,omitempty"`
	PlateNo string `json:"plate_no,omitempty"`
}

type HistoryItemResponse struct {
	ID          string                  `json:"id,omitempty"`
	VehicleID   string                  `json:"vehicle_id,omitempty"`
	Title       string                  `json:"title"`
	Status      string                  `json:"status"`
	StatusClass string                  `json:"status_class"`
	CompletedAt *string                 `json:"completed_at,omitempty"`
	Cost        *float64                `json:"cost,omitempty"`
	Vehicle     *HistoryVehicleResponse `json:"vehicle,omitempty"`
}

type HistorySearchResponse struct {
	Items []HistoryItemResponse `json:"items"`
	Count int                   `json:"count"`
}

func FromHistoryItem(it entities.HistoryItem) HistoryItemResponse {
	out := HistoryItemResponse{
		ID:          it.ID,
		VehicleID:   it.VehicleID,
		Title:       it.Title,
		Status:      string(it.Status),
		StatusClass: ResolveStatusClass(it.Status),
		CompletedAt: it.CompletedAt,
		Cost:        it.Cost,
	}
	if it.Vehicle != nil {
		out.Vehicle = &HistoryVehicleResponse{
			Make:    it.Vehicle.Make,
			Model:   it.Vehicle.Model,
			PlateNo: it.Vehicle.PlateNo,
		}
	}
	return out
}

func FromHistoryItems(items []entities.HistoryItem) []HistoryItemResponse {
	out := make([]HistoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromHistoryItem(it))
	}
	return out
}

func FromHistorySearch(s usecase.HistorySearch) HistorySearchResponse {
	return HistorySearchResponse{
		Items: FromHistoryItems(s.Items),
		Count: s.Count,
	}
}

func ResolveStatusClass(s entities.HistoryStatus) string {
	switch s {
	case entities.HistoryStatusOpen:
		return StatusClassOpen
	case entities.HistoryStatusInProgress:
		return StatusClassInProgress
	case entities.HistoryStatusDone:
		return StatusClassDone
	case entities.HistoryStatusCancelled:
		return StatusClassCancelled
	default:
		return StatusClassUnknown
	}
}
