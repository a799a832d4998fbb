package usecase_test

import (
	"context"
	"testing"

	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/dto/response"
	"theatre-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetPerformanceByID_Availability(t *testing.T) {
	repo := newFakeRepository()
	bookingService := usecase.NewBookingService(repo, zap.NewNop())
	performanceService := usecase.NewPerformanceService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 2, 3) // capacity 6
	ctx := context.Background()

	detail, err := performanceService.GetPerformanceByID(ctx, performance.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 6, detail.AvailableSeats)

	_, err = bookingService.CreateTicket(ctx, uuid.New().String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          1,
	})
	require.NoError(t, err)

	detail, err = performanceService.GetPerformanceByID(ctx, performance.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 5, detail.AvailableSeats)
}

func TestGetPerformanceByID_SoldOut(t *testing.T) {
	repo := newFakeRepository()
	bookingService := usecase.NewBookingService(repo, zap.NewNop())
	performanceService := usecase.NewPerformanceService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 1, 2) // capacity 2
	ctx := context.Background()

	for seat := 1; seat <= 2; seat++ {
		_, err := bookingService.CreateTicket(ctx, uuid.New().String(), &request.CreateTicketRequest{
			PerformanceID: performance.ID.String(),
			Row:           1,
			Seat:          seat,
		})
		require.NoError(t, err)
	}

	detail, err := performanceService.GetPerformanceByID(ctx, performance.ID.String())
	require.NoError(t, err)
	assert.Equal(t, response.SoldOutLabel, detail.AvailableSeats)
}

func TestGetPerformanceByID_NoHall(t *testing.T) {
	repo := newFakeRepository()
	performanceService := usecase.NewPerformanceService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 2, 3)
	ctx := context.Background()

	// Hall deleted; availability is undefined
	performance.TheatreHallID = nil
	require.NoError(t, repo.Performance.Update(ctx, performance))

	detail, err := performanceService.GetPerformanceByID(ctx, performance.ID.String())
	require.NoError(t, err)
	assert.Nil(t, detail.AvailableSeats)
	assert.Nil(t, detail.TheatreHall)
}

func TestGetPerformanceByID_PlayExpanded(t *testing.T) {
	repo := newFakeRepository()
	performanceService := usecase.NewPerformanceService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 2, 3)

	detail, err := performanceService.GetPerformanceByID(context.Background(), performance.ID.String())
	require.NoError(t, err)
	require.NotNil(t, detail.Play)
	assert.Equal(t, "Hamlet", detail.Play.Title)
}

func TestGetPerformanceByID_NotFound(t *testing.T) {
	repo := newFakeRepository()
	performanceService := usecase.NewPerformanceService(repo, zap.NewNop())

	detail, err := performanceService.GetPerformanceByID(context.Background(), uuid.New().String())

	assert.Nil(t, detail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
