package usecase

import (
	"context"
	"errors"
	"testing"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/internal/usecase/interfaces/mocks"
	"customer_portal/pkg/logger"

	"go.uber.org/mock/gomock"
)

const testAuth = "Bearer token-123"

func TestDashboardUseCase_Load(t *testing.T) {
	t.Run("client not configured", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, logger.Nop())
		_, err := uc.Load(context.Background(), testAuth)
		if !errors.Is(err, ErrClientNotConfigured) {
			t.Fatalf("expected ErrClientNotConfigured, got %v", err)
		}
	})

	t.Run("aggregates all three reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockICustomerServiceClient(ctrl)
		uc := NewDashboardUseCase(client, logger.Nop())

		profile := entities.CustomerProfile{UserID: "u-1", Name: "Amal", Email: "amal@x.com"}
		vehicles := []entities.Vehicle{{ID: "v-1", Make: "Toyota", Model: "Axio"}}
		history := []entities.HistoryItem{{ID: "h-1", Title: "Oil Change", Status: entities.HistoryStatusDone}}

		client.EXPECT().GetOwnProfile(gomock.Any(), testAuth).Return(profile, nil)
		client.EXPECT().ListVehicles(gomock.Any(), testAuth).Return(vehicles, nil)
		client.EXPECT().ListHistory(gomock.Any(), testAuth).Return(history, nil)

		load, err := uc.Load(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.Profile == nil || load.Profile.UserID != "u-1" {
			t.Fatalf("unexpected profile: %+v", load.Profile)
		}
		if len(load.Vehicles) != 1 || len(load.History) != 1 {
			t.Fatalf("unexpected collections: %+v", load)
		}
	})

	t.Run("missing profile is a successful empty state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockICustomerServiceClient(ctrl)
		uc := NewDashboardUseCase(client, logger.Nop())

		client.EXPECT().GetOwnProfile(gomock.Any(), testAuth).Return(entities.CustomerProfile{}, interfaces.ErrProfileNotFound)
		client.EXPECT().ListVehicles(gomock.Any(), testAuth).Return([]entities.Vehicle{{ID: "v-1"}}, nil)
		client.EXPECT().ListHistory(gomock.Any(), testAuth).Return([]entities.HistoryItem{{ID: "h-1", Title: "Tune up"}}, nil)

		load, err := uc.Load(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("missing profile must not fail the load: %v", err)
		}
		if load.Profile != nil {
			t.Fatalf("expected nil profile, got %+v", load.Profile)
		}
		if len(load.Vehicles) != 1 || len(load.History) != 1 {
			t.Fatalf("other reads must still populate: %+v", load)
		}
	})

	t.Run("vehicle read failure fails the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockICustomerServiceClient(ctrl)
		uc := NewDashboardUseCase(client, logger.Nop())

		upstreamErr := &interfaces.UpstreamError{Operation: "list vehicles", StatusCode: 500}

		client.EXPECT().GetOwnProfile(gomock.Any(), testAuth).Return(entities.CustomerProfile{UserID: "u-1"}, nil).MaxTimes(1)
		client.EXPECT().ListVehicles(gomock.Any(), testAuth).Return(nil, upstreamErr)
		client.EXPECT().ListHistory(gomock.Any(), testAuth).Return([]entities.HistoryItem{}, nil).MaxTimes(1)

		_, err := uc.Load(context.Background(), testAuth)
		if err == nil {
			t.Fatalf("expected the aggregate to fail")
		}

		var ue *interfaces.UpstreamError
		if !errors.As(err, &ue) || ue.Operation != "list vehicles" {
			t.Fatalf("expected the vehicle read error, got %v", err)
		}
	})

	t.Run("nil collections normalize to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockICustomerServiceClient(ctrl)
		uc := NewDashboardUseCase(client, logger.Nop())

		client.EXPECT().GetOwnProfile(gomock.Any(), testAuth).Return(entities.CustomerProfile{}, interfaces.ErrProfileNotFound)
		client.EXPECT().ListVehicles(gomock.Any(), testAuth).Return(nil, nil)
		client.EXPECT().ListHistory(gomock.Any(), testAuth).Return(nil, nil)

		load, err := uc.Load(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.Vehicles == nil || load.History == nil {
			t.Fatalf("collections must never be nil on success: %+v", load)
		}
	})
}
