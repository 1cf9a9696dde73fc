package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
	"github.com/Astemirdum/rental-service/rental/internal/repository"
	repo_mocks "github.com/Astemirdum/rental-service/rental/internal/repository/mocks"
	"github.com/Astemirdum/rental-service/rental/internal/service"
)

func newBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository) *service.BookingService {
	return service.NewBookingService(bookingRepo, carRepo, zap.NewExample().Named("test"))
}

func availableCar(rate float64) model.Car {
	return model.Car{
		ID:           uuid.New(),
		Brand:        "Toyota",
		Model:        "Camry",
		Year:         2022,
		LicensePlate: "ABC-123",
		DailyRate:    rate,
		Status:       model.CarStatusAvailable,
	}
}

func bookingRequest(carID uuid.UUID, start model.Date, days int) model.CreateBookingRequest {
	return model.CreateBookingRequest{
		CarID:         carID,
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		StartDate:     start,
		EndDate:       start.AddDays(days),
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Parallel()

	car := availableCar(50.0)
	start := model.Today().AddDays(30)

	type mockBehavior func(carRepo *repo_mocks.MockCarRepository, bookingRepo *repo_mocks.MockBookingRepository, req model.CreateBookingRequest)

	tests := []struct {
		name         string
		req          model.CreateBookingRequest
		mockBehavior mockBehavior
		wantErr      error
		wantCost     float64
	}{
		{
			name: "ok two days at 50",
			req:  bookingRequest(car.ID, start, 2),
			mockBehavior: func(carRepo *repo_mocks.MockCarRepository, bookingRepo *repo_mocks.MockBookingRepository, req model.CreateBookingRequest) {
				carRepo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(car, nil)
				bookingRepo.EXPECT().
					FindByCarAndDateRange(gomock.Any(), req.CarID, req.StartDate, req.EndDate).
					Return([]model.Booking{}, nil)
				bookingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) (model.Booking, error) {
						return b, nil
					})
			},
			wantCost: 100.0,
		},
		{
			name: "car not found, nothing saved",
			req:  bookingRequest(uuid.New(), start, 2),
			mockBehavior: func(carRepo *repo_mocks.MockCarRepository, bookingRepo *repo_mocks.MockBookingRepository, req model.CreateBookingRequest) {
				carRepo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(model.Car{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrCarNotFound,
		},
		{
			name: "overlapping active booking, nothing saved",
			req:  bookingRequest(car.ID, start, 5),
			mockBehavior: func(carRepo *repo_mocks.MockCarRepository, bookingRepo *repo_mocks.MockBookingRepository, req model.CreateBookingRequest) {
				carRepo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(car, nil)
				bookingRepo.EXPECT().
					FindByCarAndDateRange(gomock.Any(), req.CarID, req.StartDate, req.EndDate).
					Return([]model.Booking{{
						ID:        uuid.New(),
						CarID:     req.CarID,
						StartDate: req.StartDate.AddDays(1),
						EndDate:   req.EndDate.AddDays(1),
						Status:    model.BookingStatusConfirmed,
					}}, nil)
			},
			wantErr: errs.ErrNotAvailable,
		},
		{
			name: "invalid dates, nothing saved",
			req:  bookingRequest(car.ID, start, 0),
			mockBehavior: func(carRepo *repo_mocks.MockCarRepository, bookingRepo *repo_mocks.MockBookingRepository, req model.CreateBookingRequest) {
				carRepo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(car, nil)
				bookingRepo.EXPECT().
					FindByCarAndDateRange(gomock.Any(), req.CarID, req.StartDate, req.EndDate).
					Return([]model.Booking{}, nil)
			},
			wantErr: errs.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			carRepo := repo_mocks.NewMockCarRepository(c)
			bookingRepo := repo_mocks.NewMockBookingRepository(c)
			tt.mockBehavior(carRepo, bookingRepo, tt.req)

			svc := newBookingService(bookingRepo, carRepo)
			booking, err := svc.CreateBooking(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.req.CarID, booking.CarID)
			require.Equal(t, tt.wantCost, booking.TotalCost)
			require.Equal(t, model.BookingStatusPending, booking.Status)
		})
	}
}

func TestBookingService_BackToBackBookings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carRepo := repository.NewCarMemory()
	bookingRepo := repository.NewBookingMemory()
	svc := newBookingService(bookingRepo, carRepo)

	car := availableCar(50.0)
	_, err := carRepo.Save(ctx, car)
	require.NoError(t, err)

	base := model.Today().AddDays(30)

	first, err := svc.CreateBooking(ctx, bookingRequest(car.ID, base, 5))
	require.NoError(t, err)
	require.True(t, first.EndDate.Equal(base.AddDays(5)))

	// starts exactly where the first one ends
	second, err := svc.CreateBooking(ctx, bookingRequest(car.ID, base.AddDays(5), 3))
	require.NoError(t, err)
	require.Equal(t, 150.0, second.TotalCost)
}

func TestBookingService_ContainedIntervalConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carRepo := repository.NewCarMemory()
	bookingRepo := repository.NewBookingMemory()
	svc := newBookingService(bookingRepo, carRepo)

	car := availableCar(50.0)
	_, err := carRepo.Save(ctx, car)
	require.NoError(t, err)

	base := model.Today().AddDays(30)
	_, err = svc.CreateBooking(ctx, bookingRequest(car.ID, base, 10))
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, bookingRequest(car.ID, base.AddDays(2), 2))
	require.True(t, errors.Is(err, errs.ErrNotAvailable))

	bookings, err := bookingRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
}

func TestBookingService_CancelFreesTheRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carRepo := repository.NewCarMemory()
	bookingRepo := repository.NewBookingMemory()
	svc := newBookingService(bookingRepo, carRepo)

	car := availableCar(50.0)
	_, err := carRepo.Save(ctx, car)
	require.NoError(t, err)

	base := model.Today().AddDays(30)
	booking, err := svc.CreateBooking(ctx, bookingRequest(car.ID, base, 5))
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, bookingRequest(car.ID, base, 5))
	require.True(t, errors.Is(err, errs.ErrNotAvailable))

	cancelled, err := svc.CancelBooking(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.UpdatedAt)

	rebooked, err := svc.CreateBooking(ctx, bookingRequest(car.ID, base, 5))
	require.NoError(t, err)
	require.NotEqual(t, booking.ID, rebooked.ID)

	// the cancelled booking stays on record
	bookings, err := bookingRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
}

func TestBookingService_CancelIsRepeatable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carRepo := repository.NewCarMemory()
	bookingRepo := repository.NewBookingMemory()
	svc := newBookingService(bookingRepo, carRepo)

	car := availableCar(50.0)
	_, err := carRepo.Save(ctx, car)
	require.NoError(t, err)

	booking, err := svc.CreateBooking(ctx, bookingRequest(car.ID, model.Today().AddDays(30), 2))
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID)
	require.NoError(t, err)
	again, err := svc.CancelBooking(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusCancelled, again.Status)
}

func TestBookingService_GetBookingNotFound(t *testing.T) {
	t.Parallel()

	svc := newBookingService(repository.NewBookingMemory(), repository.NewCarMemory())

	_, err := svc.GetBooking(context.Background(), uuid.New())
	require.True(t, errors.Is(err, errs.ErrBookingNotFound))

	_, err = svc.CancelBooking(context.Background(), uuid.New())
	require.True(t, errors.Is(err, errs.ErrBookingNotFound))
}

func TestBookingService_ListAvailableCarsByDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carRepo := repository.NewCarMemory()
	bookingRepo := repository.NewBookingMemory()
	svc := newBookingService(bookingRepo, carRepo)

	free := availableCar(50.0)
	booked := availableCar(60.0)
	inShop := availableCar(70.0)
	inShop.Status = model.CarStatusMaintenance
	for _, car := range []model.Car{free, booked, inShop} {
		_, err := carRepo.Save(ctx, car)
		require.NoError(t, err)
	}

	base := model.Today().AddDays(30)
	_, err := svc.CreateBooking(ctx, bookingRequest(booked.ID, base, 5))
	require.NoError(t, err)

	got, err := svc.ListAvailableCarsByDate(ctx, base, base.AddDays(5))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, free.ID, got[0].ID)

	// outside the booked range both available cars come back, in listing order
	got, err = svc.ListAvailableCarsByDate(ctx, base.AddDays(10), base.AddDays(12))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, free.ID, got[0].ID)
	require.Equal(t, booked.ID, got[1].ID)
}
