package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg/logger"
)

var ErrClientNotConfigured = errors.New("customer service client not configured")

// DashboardLoad is the consolidated result of one dashboard load.
// Profile is nil when the user has not provisioned one yet.
type DashboardLoad struct {
	Profile  *entities.CustomerProfile
	Vehicles []entities.Vehicle
	History  []entities.HistoryItem
}

// IDashboardUseCase aggregates the three customer-scoped resources into one
// load result for the dashboard view.

type IDashboardUseCase interface {
	Load(ctx context.Context, auth string) (DashboardLoad, error)
}

type DashboardUseCase struct {
	client interfaces.ICustomerServiceClient
	log    logger.ILogger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(client interfaces.ICustomerServiceClient, log logger.ILogger) *DashboardUseCase {
	return &DashboardUseCase{client: client, log: log}
}

// Load issues the profile, vehicle and history reads concurrently and
// settles once all three are done. A missing profile is reinterpreted as a
// successful load with Profile == nil; any other failure fails the whole
// aggregate with the first error and cancels the sibling reads through the
// group context, so a torn-down caller never completes a stale load.
func (u *DashboardUseCase) Load(ctx context.Context, auth string) (DashboardLoad, error) {
	if u.client == nil {
		return DashboardLoad{}, ErrClientNotConfigured
	}

	var (
		profile  *entities.CustomerProfile
		vehicles []entities.Vehicle
		history  []entities.HistoryItem
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := u.client.GetOwnProfile(ctx, auth)
		if errors.Is(err, interfaces.ErrProfileNotFound) {
			u.log.Info("dashboard load: no profile yet")
			return nil
		}
		if err != nil {
			return err
		}
		profile = &p
		return nil
	})

	g.Go(func() error {
		v, err := u.client.ListVehicles(ctx, auth)
		if err != nil {
			return err
		}
		vehicles = v
		return nil
	})

	g.Go(func() error {
		h, err := u.client.ListHistory(ctx, auth)
		if err != nil {
			return err
		}
		history = h
		return nil
	})

	if err := g.Wait(); err != nil {
		u.log.Error("dashboard load failed", logger.Error(err))
		return DashboardLoad{}, err
	}

	if vehicles == nil {
		vehicles = []entities.Vehicle{}
	}
	if history == nil {
		history = []entities.HistoryItem{}
	}

	return DashboardLoad{Profile: profile, Vehicles: vehicles, History: history}, nil
}
