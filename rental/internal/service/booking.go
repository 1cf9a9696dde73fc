package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/rental-service/pkg/keymutex"
	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
	"github.com/Astemirdum/rental-service/rental/internal/repository"
)

type BookingService struct {
	log         *zap.Logger
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	carLocks    *keymutex.KeyMutex
}

func NewBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository, log *zap.Logger) *BookingService {
	return &BookingService{
		log:         log.Named("booking-svc"),
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		carLocks:    keymutex.New(),
	}
}

// CreateBooking books the car for [startDate, endDate) at the car's
// current daily rate. The availability check and the save run under a
// per-car lock, so two concurrent requests for the same car cannot both
// pass the check. Nothing is written when any precondition fails.
func (s *BookingService) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	carKey := req.CarID.String()
	s.carLocks.Lock(carKey)
	defer s.carLocks.Unlock(carKey)

	car, err := s.carRepo.FindByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Booking{}, errs.ErrCarNotFound
		}
		return model.Booking{}, err
	}

	available, err := s.IsCarAvailable(ctx, req.CarID, req.StartDate, req.EndDate)
	if err != nil {
		return model.Booking{}, err
	}
	if !available {
		return model.Booking{}, errs.ErrNotAvailable
	}

	booking, err := model.NewBooking(req.CarID, req.CustomerName, req.CustomerEmail,
		req.StartDate, req.EndDate, car.DailyRate)
	if err != nil {
		return model.Booking{}, err
	}

	saved, err := s.bookingRepo.Save(ctx, booking)
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info("booking created",
		zap.String("bookingId", saved.ID.String()),
		zap.String("carId", saved.CarID.String()),
		zap.Float64("totalCost", saved.TotalCost),
	)
	return saved, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Booking{}, errs.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

// CancelBooking marks the booking cancelled whatever its current status,
// so repeating a cancel succeeds and keeps the booking cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}

	now := time.Now().UTC()
	booking.Status = model.BookingStatusCancelled
	booking.UpdatedAt = &now

	updated, err := s.bookingRepo.Update(ctx, booking)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Booking{}, errs.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	s.log.Info("booking cancelled", zap.String("bookingId", updated.ID.String()))
	return updated, nil
}

// ListAvailableCarsByDate keeps the cars in available status that have no
// active booking overlapping [startDate, endDate), preserving the store's
// listing order. Availability checks for the candidates run concurrently.
func (s *BookingService) ListAvailableCarsByDate(ctx context.Context, startDate, endDate model.Date) ([]model.Car, error) {
	cars, err := s.carRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		if car.Status == model.CarStatusAvailable {
			candidates = append(candidates, car)
		}
	}

	free := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i := range candidates {
		i := i
		g.Go(func() error {
			ok, err := s.IsCarAvailable(gctx, candidates[i].ID, startDate, endDate)
			if err != nil {
				return err
			}
			free[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	available := make([]model.Car, 0, len(candidates))
	for i, car := range candidates {
		if free[i] {
			available = append(available, car)
		}
	}
	return available, nil
}
