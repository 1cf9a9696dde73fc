package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
)

// CarMemory is the map-backed car repository behind the memory storage
// driver. Listing preserves insertion order.
type CarMemory struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Car
	order []uuid.UUID
}

func NewCarMemory() *CarMemory {
	return &CarMemory{items: make(map[uuid.UUID]model.Car)}
}

func (s *CarMemory) Save(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[car.ID]; !ok {
		s.order = append(s.order, car.ID)
	}
	s.items[car.ID] = car
	return car, nil
}

func (s *CarMemory) FindByID(_ context.Context, id uuid.UUID) (model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.items[id]
	if !ok {
		return model.Car{}, errs.ErrNotFound
	}
	return car, nil
}

func (s *CarMemory) FindAll(_ context.Context) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := make([]model.Car, 0, len(s.order))
	for _, id := range s.order {
		cars = append(cars, s.items[id])
	}
	return cars, nil
}

func (s *CarMemory) Update(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[car.ID]; !ok {
		return model.Car{}, errs.ErrNotFound
	}
	s.items[car.ID] = car
	return car, nil
}

func (s *CarMemory) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// BookingMemory is the map-backed booking repository behind the memory
// storage driver.
type BookingMemory struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Booking
	order []uuid.UUID
}

func NewBookingMemory() *BookingMemory {
	return &BookingMemory{items: make(map[uuid.UUID]model.Booking)}
}

func (s *BookingMemory) Save(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[booking.ID]; !ok {
		s.order = append(s.order, booking.ID)
	}
	s.items[booking.ID] = booking
	return booking, nil
}

func (s *BookingMemory) FindByID(_ context.Context, id uuid.UUID) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.items[id]
	if !ok {
		return model.Booking{}, errs.ErrNotFound
	}
	return booking, nil
}

func (s *BookingMemory) FindAll(_ context.Context) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]model.Booking, 0, len(s.order))
	for _, id := range s.order {
		bookings = append(bookings, s.items[id])
	}
	return bookings, nil
}

func (s *BookingMemory) FindByCarAndDateRange(_ context.Context, carID uuid.UUID, startDate, endDate model.Date) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Booking, 0)
	for _, id := range s.order {
		booking := s.items[id]
		if booking.CarID == carID &&
			booking.StartDate.Before(endDate) && booking.EndDate.After(startDate) {
			matched = append(matched, booking)
		}
	}
	return matched, nil
}

func (s *BookingMemory) Update(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[booking.ID]; !ok {
		return model.Booking{}, errs.ErrNotFound
	}
	s.items[booking.ID] = booking
	return booking, nil
}

func (s *BookingMemory) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

var (
	_ CarRepository     = (*CarMemory)(nil)
	_ BookingRepository = (*BookingMemory)(nil)
)
