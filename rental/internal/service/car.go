package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
	"github.com/Astemirdum/rental-service/rental/internal/repository"
)

type CarService struct {
	log     *zap.Logger
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository, log *zap.Logger) *CarService {
	return &CarService{
		log:     log.Named("car-svc"),
		carRepo: carRepo,
	}
}

func (s *CarService) CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error) {
	car, err := model.NewCar(req.Brand, req.Model, req.Year, req.LicensePlate, req.DailyRate)
	if err != nil {
		return model.Car{}, err
	}

	saved, err := s.carRepo.Save(ctx, car)
	if err != nil {
		return model.Car{}, err
	}
	s.log.Info("car created",
		zap.String("carId", saved.ID.String()),
		zap.String("brand", saved.Brand),
	)
	return saved, nil
}

// GetCar returns nil without an error when no car has the id. Plain
// lookups signal absence as a value, booking mutations signal it as an
// error.
func (s *CarService) GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (s *CarService) ListCars(ctx context.Context) ([]model.Car, error) {
	return s.carRepo.FindAll(ctx)
}

func (s *CarService) ListAvailableCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.carRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		if car.Status == model.CarStatusAvailable {
			available = append(available, car)
		}
	}
	return available, nil
}

// UpdateCarStatus sets the car's status directly. Bookings never change
// a car's status, the two lifecycles are independent.
func (s *CarService) UpdateCarStatus(ctx context.Context, id uuid.UUID, status model.CarStatus) (*model.Car, error) {
	if !status.Valid() {
		return nil, errors.Wrap(errs.ErrInvalidInput, "unknown car status")
	}

	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now().UTC()
	car.Status = status
	car.UpdatedAt = &now

	updated, err := s.carRepo.Update(ctx, car)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteCar removes the car only. Its bookings stay untouched, so
// history survives the car's removal.
func (s *CarService) DeleteCar(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.carRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("car deleted", zap.String("carId", id.String()))
	}
	return deleted, nil
}
