//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardSummaryWindow(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockDashboardRepository(ctrl)
	storeID := uuid.New()

	// 2025-06-15 01:00 UTC is still 2025-06-14 22:00 in Sao Paulo (UTC-3),
	// so the aggregation window is the local 14th, not the UTC 15th.
	now := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	uc := usecase.NewDashboardUseCase(repo, clock.NewMockClock(now), saoPaulo)

	wantFrom := time.Date(2025, 6, 14, 3, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)
	repo.EXPECT().
		Summary(gomock.Any(), storeID, wantFrom, wantTo).
		Return(&readmodel.DashboardSummaryRM{
			OrdersToday:       12,
			RevenueCentsToday: 84000,
			AvgTicketCents:    7000,
		}, nil)

	rm, err := uc.TodaySummary(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), rm.OrdersToday)
}
