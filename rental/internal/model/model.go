package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusRented, CarStatusMaintenance:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Active reports whether a booking in this status blocks the car's
// availability. Cancelled and completed bookings never block.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Car struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Brand        string     `json:"brand" db:"brand"`
	Model        string     `json:"model" db:"model"`
	Year         int        `json:"year" db:"year"`
	LicensePlate string     `json:"licensePlate" db:"license_plate"`
	DailyRate    float64    `json:"dailyRate" db:"daily_rate"`
	Status       CarStatus  `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    *time.Time `json:"updatedAt" db:"updated_at"`
}

type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	CarID         uuid.UUID     `json:"carId" db:"car_id"`
	CustomerName  string        `json:"customerName" db:"customer_name"`
	CustomerEmail string        `json:"customerEmail" db:"customer_email"`
	StartDate     Date          `json:"startDate" db:"start_date"`
	EndDate       Date          `json:"endDate" db:"end_date"`
	TotalCost     float64       `json:"totalCost" db:"total_cost"`
	Status        BookingStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     *time.Time    `json:"updatedAt" db:"updated_at"`
}

const (
	maxBrandLen        = 50
	maxModelLen        = 50
	maxLicensePlateLen = 20
	maxCustomerLen     = 100
	minYear            = 1900
	maxYear            = 2100
)

// NewCar validates the car fields and builds a car in available status.
func NewCar(brand, carModel string, year int, licensePlate string, dailyRate float64) (Car, error) {
	switch {
	case brand == "" || len(brand) > maxBrandLen:
		return Car{}, errors.Wrap(errs.ErrInvalidInput, "brand must be 1..50 characters")
	case carModel == "" || len(carModel) > maxModelLen:
		return Car{}, errors.Wrap(errs.ErrInvalidInput, "model must be 1..50 characters")
	case year < minYear || year > maxYear:
		return Car{}, errors.Wrap(errs.ErrInvalidInput, "year must be within 1900..2100")
	case licensePlate == "" || len(licensePlate) > maxLicensePlateLen:
		return Car{}, errors.Wrap(errs.ErrInvalidInput, "licensePlate must be 1..20 characters")
	case dailyRate <= 0:
		return Car{}, errors.Wrap(errs.ErrInvalidInput, "dailyRate must be positive")
	}

	return Car{
		ID:           uuid.New(),
		Brand:        brand,
		Model:        carModel,
		Year:         year,
		LicensePlate: licensePlate,
		DailyRate:    dailyRate,
		Status:       CarStatusAvailable,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewBooking validates the booking fields and prices the stay as whole
// days times the car's daily rate. The interval is half-open, so the end
// date itself is not charged. A new booking always starts out pending.
func NewBooking(carID uuid.UUID, customerName, customerEmail string, startDate, endDate Date, dailyRate float64) (Booking, error) {
	switch {
	case customerName == "" || len(customerName) > maxCustomerLen:
		return Booking{}, errors.Wrap(errs.ErrInvalidInput, "customerName must be 1..100 characters")
	case customerEmail == "" || len(customerEmail) > maxCustomerLen:
		return Booking{}, errors.Wrap(errs.ErrInvalidInput, "customerEmail must be 1..100 characters")
	case !endDate.After(startDate):
		return Booking{}, errors.Wrap(errs.ErrInvalidInput, "endDate must be after startDate")
	case startDate.Before(Today()):
		return Booking{}, errors.Wrap(errs.ErrInvalidInput, "startDate cannot be in the past")
	}

	totalCost := float64(startDate.DaysUntil(endDate)) * dailyRate
	if totalCost <= 0 {
		return Booking{}, errors.Wrap(errs.ErrInvalidInput, "totalCost must be positive")
	}

	return Booking{
		ID:            uuid.New(),
		CarID:         carID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalCost:     totalCost,
		Status:        BookingStatusPending,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

type CreateCarRequest struct {
	Brand        string  `json:"brand" validate:"required,max=50"`
	Model        string  `json:"model" validate:"required,max=50"`
	Year         int     `json:"year" validate:"required,gte=1900,lte=2100"`
	LicensePlate string  `json:"licensePlate" validate:"required,max=20"`
	DailyRate    float64 `json:"dailyRate" validate:"required,gt=0"`
}

type UpdateCarStatusRequest struct {
	Status CarStatus `json:"status" validate:"required,oneof=available rented maintenance"`
}

type CreateBookingRequest struct {
	CarID         uuid.UUID `json:"carId" validate:"required"`
	CustomerName  string    `json:"customerName" validate:"required,max=100"`
	CustomerEmail string    `json:"customerEmail" validate:"required,max=100"`
	StartDate     Date      `json:"startDate" validate:"required"`
	EndDate       Date      `json:"endDate" validate:"required"`
}
