package usecase

import (
	"context"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg/logger"
)

// HistorySearch is the full-history view's result: the filtered records in
// recency order plus their count.
type HistorySearch struct {
	Items []entities.HistoryItem
	Count int
}

// IHistoryUseCase serves the searchable service-history ledger.

type IHistoryUseCase interface {
	Search(ctx context.Context, auth, query string, status entities.StatusFilter) (HistorySearch, error)
}

type HistoryUseCase struct {
	client interfaces.ICustomerServiceClient
	log    logger.ILogger
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(client interfaces.ICustomerServiceClient, log logger.ILogger) *HistoryUseCase {
	return &HistoryUseCase{client: client, log: log}
}

// Search loads the caller's history, orders it by recency once, then applies
// the pure text/status filter over that ordering. The filter is stable, so
// results stay in recency order.
func (u *HistoryUseCase) Search(ctx context.Context, auth, query string, status entities.StatusFilter) (HistorySearch, error) {
	if u.client == nil {
		return HistorySearch{}, ErrClientNotConfigured
	}

	items, err := u.client.ListHistory(ctx, auth)
	if err != nil {
		u.log.Error("history search failed", logger.Error(err))
		return HistorySearch{}, err
	}

	filtered := entities.FilterHistory(entities.SortByRecency(items), query, status)
	return HistorySearch{Items: filtered, Count: len(filtered)}, nil
}
