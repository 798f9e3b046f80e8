package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flightprint/flightprint-api/internal/domain"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// History listing limits.
const (
	DefaultHistoryLimit  = 10
	MaxHistoryLimit      = 100
	DefaultRetentionDays = 30
	maxRetentionDays     = 3650
)

// HistoryUseCase exposes stored searches.
type HistoryUseCase interface {
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)
	PopularRoutes(ctx context.Context, limit int) ([]domain.PopularRoute, error)
	Stats(ctx context.Context) (domain.SearchStats, error)

	// Cleanup deletes searches older than days and returns how many were removed.
	Cleanup(ctx context.Context, days int) (int64, error)
}

type historyUseCase struct {
	store domain.SearchHistory
	clock timeutil.Clock
}

// NewHistoryUseCase creates a HistoryUseCase over store.
func NewHistoryUseCase(store domain.SearchHistory, clock timeutil.Clock) HistoryUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &historyUseCase{store: store, clock: clock}
}

// clampLimit maps non-positive limits to the default and caps the rest.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}

func (uc *historyUseCase) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	records, err := uc.store.Recent(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	if records == nil {
		records = []domain.SearchRecord{}
	}
	return records, nil
}

func (uc *historyUseCase) PopularRoutes(ctx context.Context, limit int) ([]domain.PopularRoute, error) {
	routes, err := uc.store.PopularRoutes(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("popular routes: %w", err)
	}
	if routes == nil {
		routes = []domain.PopularRoute{}
	}
	return routes, nil
}

func (uc *historyUseCase) Stats(ctx context.Context) (domain.SearchStats, error) {
	stats, err := uc.store.Stats(ctx)
	if err != nil {
		return domain.SearchStats{}, fmt.Errorf("search stats: %w", err)
	}
	return stats, nil
}

func (uc *historyUseCase) Cleanup(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = DefaultRetentionDays
	}
	if days > maxRetentionDays {
		return 0, fmt.Errorf("%w: retention of %d days is too long", domain.ErrInvalidRequest, days)
	}

	cutoff := uc.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)
	deleted, err := uc.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup searches: %w", err)
	}
	return deleted, nil
}

var _ HistoryUseCase = (*historyUseCase)(nil)
