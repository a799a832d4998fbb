package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedPerformance(t *testing.T, repo *repository.Repository, rows, seatsInRow int) *entity.Performance {
	t.Helper()

	ctx := context.Background()
	now := time.Now()

	hall := &entity.TheatreHall{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Main Stage",
		Rows:       rows,
		SeatsInRow: seatsInRow,
	}
	require.NoError(t, repo.TheatreHall.Create(ctx, hall))

	play := &entity.Play{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:       "Hamlet",
		Description: "The tragedy of the Prince of Denmark",
	}
	require.NoError(t, repo.Play.Create(ctx, play))

	performance := &entity.Performance{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PlayID:        &play.ID,
		TheatreHallID: &hall.ID,
		Showtime:      now.Add(48 * time.Hour),
	}
	require.NoError(t, repo.Performance.Create(ctx, performance))

	return performance
}

func TestCreateTicket_Success(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	userID := uuid.New()

	ticket, err := service.CreateTicket(context.Background(), userID.String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           3,
		Seat:          7,
	})

	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, 3, ticket.Row)
	assert.Equal(t, 7, ticket.Seat)
	assert.Equal(t, "Hamlet", ticket.PlayTitle)
	assert.NotEmpty(t, ticket.ReservationID)
}

func TestCreateTicket_GroupsUnderOneActiveReservation(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	userID := uuid.New()
	ctx := context.Background()

	first, err := service.CreateTicket(ctx, userID.String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          1,
	})
	require.NoError(t, err)

	second, err := service.CreateTicket(ctx, userID.String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          2,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ReservationID, second.ReservationID)
}

func TestCreateTicket_NewReservationAfterCheckout(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	userID := uuid.New()
	ctx := context.Background()

	first, err := service.CreateTicket(ctx, userID.String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          1,
	})
	require.NoError(t, err)

	completed, err := service.Checkout(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, completed.Status)
	assert.Equal(t, first.ReservationID, completed.ID)

	second, err := service.CreateTicket(ctx, userID.String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          2,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ReservationID, second.ReservationID)
}

func TestCreateTicket_SeatAlreadyTaken(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	ctx := context.Background()

	_, err := service.CreateTicket(ctx, uuid.New().String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           5,
		Seat:          5,
	})
	require.NoError(t, err)

	// A different user wants the same seat
	ticket, err := service.CreateTicket(ctx, uuid.New().String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           5,
		Seat:          5,
	})

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, usecase.ErrSeatTaken)
}

func TestCreateTicket_SeatOutOfBounds(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	ctx := context.Background()

	tests := []struct {
		name string
		row  int
		seat int
	}{
		{"row too high", 11, 1},
		{"seat too high", 1, 13},
		{"row zero", 0, 1},
		{"seat zero", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &request.CreateTicketRequest{
				PerformanceID: performance.ID.String(),
				Row:           tt.row,
				Seat:          tt.seat,
			}

			// Zero values fail struct validation before the bounds check
			if tt.row == 0 || tt.seat == 0 {
				_, err := service.CreateTicket(ctx, uuid.New().String(), req)
				assert.Error(t, err)
				return
			}

			ticket, err := service.CreateTicket(ctx, uuid.New().String(), req)
			assert.Nil(t, ticket)

			var boundsErr *usecase.SeatBoundsError
			require.True(t, errors.As(err, &boundsErr))
			assert.Equal(t, 10, boundsErr.MaxRows)
			assert.Equal(t, 12, boundsErr.MaxSeats)
			assert.Equal(t, tt.row, boundsErr.Row)
			assert.Equal(t, tt.seat, boundsErr.Seat)
		})
	}
}

func TestCreateTicket_MissingPerformance(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	ticket, err := service.CreateTicket(context.Background(), uuid.New().String(), &request.CreateTicketRequest{
		PerformanceID: uuid.New().String(),
		Row:           1,
		Seat:          1,
	})

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, usecase.ErrMissingPerformance)
}

func TestCreateTicket_MissingHall(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)

	// Simulate the hall being deleted; the reference is nulled
	performance.TheatreHallID = nil
	require.NoError(t, repo.Performance.Update(context.Background(), performance))

	ticket, err := service.CreateTicket(context.Background(), uuid.New().String(), &request.CreateTicketRequest{
		PerformanceID: performance.ID.String(),
		Row:           1,
		Seat:          1,
	})

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, usecase.ErrMissingHall)
}

func TestCheckout_NoActiveReservation(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	reservation, err := service.Checkout(context.Background(), uuid.New().String())

	assert.Nil(t, reservation)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active reservation")
}

func TestGetUserReservations_TicketsExpanded(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	performance := seedPerformance(t, repo, 10, 12)
	userID := uuid.New()
	ctx := context.Background()

	for seat := 1; seat <= 3; seat++ {
		_, err := service.CreateTicket(ctx, userID.String(), &request.CreateTicketRequest{
			PerformanceID: performance.ID.String(),
			Row:           2,
			Seat:          seat,
		})
		require.NoError(t, err)
	}

	result, err := service.GetUserReservations(ctx, userID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Len(t, result.Data[0].Tickets, 3)
	assert.Equal(t, "Hamlet", result.Data[0].Tickets[0].PlayTitle)
}

func TestDeleteReservation_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewBookingService(repo, zap.NewNop())

	err := service.DeleteReservation(context.Background(), uuid.New().String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
