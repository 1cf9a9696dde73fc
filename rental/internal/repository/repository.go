package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/rental-service/rental/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// CarRepository persists cars. Lookups of absent ids return errs.ErrNotFound.
// FindAll keeps a stable listing order across calls.
type CarRepository interface {
	Save(ctx context.Context, car model.Car) (model.Car, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Car, error)
	FindAll(ctx context.Context) ([]model.Car, error)
	Update(ctx context.Context, car model.Car) (model.Car, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookingRepository persists bookings. FindByCarAndDateRange returns every
// booking of the car whose [startDate, endDate) interval intersects the
// query range, regardless of booking status. Status filtering belongs to
// the caller.
type BookingRepository interface {
	Save(ctx context.Context, booking model.Booking) (model.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Booking, error)
	FindAll(ctx context.Context) ([]model.Booking, error)
	FindByCarAndDateRange(ctx context.Context, carID uuid.UUID, startDate, endDate model.Date) ([]model.Booking, error)
	Update(ctx context.Context, booking model.Booking) (model.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
