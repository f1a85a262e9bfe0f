package usecase

import (
	"context"
	"time"

	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DashboardRepository interface {
	Summary(ctx context.Context, storeID uuid.UUID, from, to time.Time) (*readmodel.DashboardSummaryRM, error)
}

type DashboardUseCase interface {
	TodaySummary(ctx context.Context, storeID uuid.UUID) (*readmodel.DashboardSummaryRM, error)
	Summary(ctx context.Context, storeID uuid.UUID, date time.Time) (*readmodel.DashboardSummaryRM, error)
}

type dashboardUseCaseImpl struct {
	dashboardRepo DashboardRepository
	clock         clock.Clock
	location      *time.Location
}

func NewDashboardUseCase(dashboardRepo DashboardRepository, clock clock.Clock, location *time.Location) DashboardUseCase {
	return &dashboardUseCaseImpl{
		dashboardRepo: dashboardRepo,
		clock:         clock,
		location:      location,
	}
}

func (d *dashboardUseCaseImpl) TodaySummary(ctx context.Context, storeID uuid.UUID) (*readmodel.DashboardSummaryRM, error) {
	return d.Summary(ctx, storeID, d.clock.Now())
}

// Summary aggregates the local calendar day containing date.
func (d *dashboardUseCaseImpl) Summary(ctx context.Context, storeID uuid.UUID, date time.Time) (*readmodel.DashboardSummaryRM, error) {
	local := date.In(d.location)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, d.location)
	to := from.AddDate(0, 0, 1)

	rm, err := d.dashboardRepo.Summary(ctx, storeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
