package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/rental-service/rental/internal/model"
	"github.com/Astemirdum/rental-service/rental/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CarService interface {
	CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error)
	GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error)
	ListCars(ctx context.Context) ([]model.Car, error)
	ListAvailableCars(ctx context.Context) ([]model.Car, error)
	UpdateCarStatus(ctx context.Context, id uuid.UUID, status model.CarStatus) (*model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (model.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (model.Booking, error)
	ListAvailableCarsByDate(ctx context.Context, startDate, endDate model.Date) ([]model.Car, error)
}

var (
	_ CarService     = (*service.CarService)(nil)
	_ BookingService = (*service.BookingService)(nil)
)
