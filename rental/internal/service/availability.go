package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/rental-service/rental/internal/model"
)

// Overlaps reports whether the half-open date intervals [startA, endA)
// and [startB, endB) intersect. Touching boundaries do not overlap, so a
// booking ending on a day leaves the car free for one starting that day.
func Overlaps(startA, endA, startB, endB model.Date) bool {
	return startA.Before(endB) && endA.After(startB)
}

// IsCarAvailable reports whether no active booking of the car overlaps
// the [startDate, endDate) range. The store returns every intersecting
// booking regardless of status, the status filter lives here.
func (s *BookingService) IsCarAvailable(ctx context.Context, carID uuid.UUID, startDate, endDate model.Date) (bool, error) {
	bookings, err := s.bookingRepo.FindByCarAndDateRange(ctx, carID, startDate, endDate)
	if err != nil {
		return false, err
	}
	for _, booking := range bookings {
		if booking.Status.Active() && Overlaps(startDate, endDate, booking.StartDate, booking.EndDate) {
			return false, nil
		}
	}
	return true, nil
}
