package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
)

const (
	carsFileName     = "cars.json"
	bookingsFileName = "bookings.json"
)

// The jsonfile driver keeps each collection as a pretty-printed JSON
// array in its own file under the data dir. Every operation reads the
// whole file and rewrites it, serialized by a store-level mutex, so the
// file stays consistent without partial updates.

func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir data dir")
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("[]"), 0o644)
}

func readAll[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read store")
	}
	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "decode store")
	}
	return items, nil
}

func writeAll[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write store")
}

type CarJSONStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewCarJSONStore(dataDir string, log *zap.Logger) (*CarJSONStore, error) {
	path := filepath.Join(dataDir, carsFileName)
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &CarJSONStore{
		path: path,
		log:  log.Named("car-store"),
	}, nil
}

func (s *CarJSONStore) Save(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := readAll[model.Car](s.path)
	if err != nil {
		return model.Car{}, err
	}
	cars = append(cars, car)
	if err := writeAll(s.path, cars); err != nil {
		s.log.Error("save car", zap.Error(err))
		return model.Car{}, err
	}
	return car, nil
}

func (s *CarJSONStore) FindByID(_ context.Context, id uuid.UUID) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := readAll[model.Car](s.path)
	if err != nil {
		return model.Car{}, err
	}
	for _, car := range cars {
		if car.ID == id {
			return car, nil
		}
	}
	return model.Car{}, errs.ErrNotFound
}

func (s *CarJSONStore) FindAll(_ context.Context) ([]model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readAll[model.Car](s.path)
}

func (s *CarJSONStore) Update(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := readAll[model.Car](s.path)
	if err != nil {
		return model.Car{}, err
	}
	for i := range cars {
		if cars[i].ID == car.ID {
			cars[i] = car
			if err := writeAll(s.path, cars); err != nil {
				s.log.Error("update car", zap.Error(err))
				return model.Car{}, err
			}
			return car, nil
		}
	}
	return model.Car{}, errs.ErrNotFound
}

func (s *CarJSONStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := readAll[model.Car](s.path)
	if err != nil {
		return false, err
	}
	kept := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		if car.ID != id {
			kept = append(kept, car)
		}
	}
	if len(kept) == len(cars) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

type BookingJSONStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewBookingJSONStore(dataDir string, log *zap.Logger) (*BookingJSONStore, error) {
	path := filepath.Join(dataDir, bookingsFileName)
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &BookingJSONStore{
		path: path,
		log:  log.Named("booking-store"),
	}, nil
}

func (s *BookingJSONStore) Save(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[model.Booking](s.path)
	if err != nil {
		return model.Booking{}, err
	}
	bookings = append(bookings, booking)
	if err := writeAll(s.path, bookings); err != nil {
		s.log.Error("save booking", zap.Error(err))
		return model.Booking{}, err
	}
	return booking, nil
}

func (s *BookingJSONStore) FindByID(_ context.Context, id uuid.UUID) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[model.Booking](s.path)
	if err != nil {
		return model.Booking{}, err
	}
	for _, booking := range bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return model.Booking{}, errs.ErrNotFound
}

func (s *BookingJSONStore) FindAll(_ context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readAll[model.Booking](s.path)
}

func (s *BookingJSONStore) FindByCarAndDateRange(_ context.Context, carID uuid.UUID, startDate, endDate model.Date) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[model.Booking](s.path)
	if err != nil {
		return nil, err
	}
	matched := make([]model.Booking, 0)
	for _, booking := range bookings {
		if booking.CarID == carID &&
			booking.StartDate.Before(endDate) && booking.EndDate.After(startDate) {
			matched = append(matched, booking)
		}
	}
	return matched, nil
}

func (s *BookingJSONStore) Update(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[model.Booking](s.path)
	if err != nil {
		return model.Booking{}, err
	}
	for i := range bookings {
		if bookings[i].ID == booking.ID {
			bookings[i] = booking
			if err := writeAll(s.path, bookings); err != nil {
				s.log.Error("update booking", zap.Error(err))
				return model.Booking{}, err
			}
			return booking, nil
		}
	}
	return model.Booking{}, errs.ErrNotFound
}

func (s *BookingJSONStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[model.Booking](s.path)
	if err != nil {
		return false, err
	}
	kept := make([]model.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.ID != id {
			kept = append(kept, booking)
		}
	}
	if len(kept) == len(bookings) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

var (
	_ CarRepository     = (*CarJSONStore)(nil)
	_ BookingRepository = (*BookingJSONStore)(nil)
)
