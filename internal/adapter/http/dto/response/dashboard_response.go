package response

import (
	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase"
)

// RecentHistoryLimit caps the dashboard's recent-history strip.
const RecentHistoryLimit = 5

type VehicleResponse struct {
	ID      string `json:"id,omitempty"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	PlateNo string `json:"plate_no"`
	Year    *int   `json:"year,omitempty"`
}

type DashboardResponse struct {
	// Profile is null for first-time users without a provisioned profile.
	Profile       *ProfileResponse      `json:"profile"`
	Vehicles      []VehicleResponse     `json:"vehicles"`
	RecentHistory []HistoryItemResponse `json:"recent_history"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:      v.ID,
		Make:    v.Make,
		Model:   v.Model,
		PlateNo: v.PlateNo,
		Year:    v.Year,
	}
}

// FromDashboardLoad shapes one aggregate load for the dashboard view:
// vehicles as-is, history ordered by recency and trimmed to the most recent
// entries.
func FromDashboardLoad(load usecase.DashboardLoad) DashboardResponse {
	vehicles := make([]VehicleResponse, 0, len(load.Vehicles))
	for _, v := range load.Vehicles {
		vehicles = append(vehicles, FromVehicle(v))
	}

	recent := entities.SortByRecency(load.History)
	if len(recent) > RecentHistoryLimit {
		recent = recent[:RecentHistoryLimit]
	}

	out := DashboardResponse{
		Vehicles:      vehicles,
		RecentHistory: FromHistoryItems(recent),
	}
	if load.Profile != nil {
		p := FromCustomerProfile(*load.Profile)
		out.Profile = &p
	}
	return out
}
