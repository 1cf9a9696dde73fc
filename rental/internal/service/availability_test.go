package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/model"
	repo_mocks "github.com/Astemirdum/rental-service/rental/internal/repository/mocks"
	"github.com/Astemirdum/rental-service/rental/internal/service"
)

func TestOverlaps(t *testing.T) {
	t.Parallel()

	base := model.NewDate(2026, time.September, 10)

	tests := []struct {
		name         string
		startA, endA model.Date
		startB, endB model.Date
		want         bool
	}{
		{
			name:   "identical intervals",
			startA: base, endA: base.AddDays(5),
			startB: base, endB: base.AddDays(5),
			want: true,
		},
		{
			name:   "partial overlap",
			startA: base, endA: base.AddDays(5),
			startB: base.AddDays(3), endB: base.AddDays(8),
			want: true,
		},
		{
			name:   "contained interval",
			startA: base, endA: base.AddDays(10),
			startB: base.AddDays(2), endB: base.AddDays(4),
			want: true,
		},
		{
			name:   "touching boundary does not overlap",
			startA: base, endA: base.AddDays(5),
			startB: base.AddDays(5), endB: base.AddDays(8),
			want: false,
		},
		{
			name:   "disjoint",
			startA: base, endA: base.AddDays(2),
			startB: base.AddDays(10), endB: base.AddDays(12),
			want: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := service.Overlaps(tt.startA, tt.endA, tt.startB, tt.endB)
			require.Equal(t, tt.want, got)
			// the predicate is symmetric
			require.Equal(t, got, service.Overlaps(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestBookingService_IsCarAvailable(t *testing.T) {
	t.Parallel()

	carID := uuid.New()
	base := model.NewDate(2026, time.September, 10)
	rangeStart, rangeEnd := base, base.AddDays(5)

	booking := func(status model.BookingStatus) model.Booking {
		return model.Booking{
			ID:        uuid.New(),
			CarID:     carID,
			StartDate: base.AddDays(1),
			EndDate:   base.AddDays(3),
			Status:    status,
		}
	}

	tests := []struct {
		name     string
		existing []model.Booking
		want     bool
	}{
		{
			name:     "no bookings",
			existing: []model.Booking{},
			want:     true,
		},
		{
			name:     "pending blocks",
			existing: []model.Booking{booking(model.BookingStatusPending)},
			want:     false,
		},
		{
			name:     "confirmed blocks",
			existing: []model.Booking{booking(model.BookingStatusConfirmed)},
			want:     false,
		},
		{
			name:     "cancelled does not block",
			existing: []model.Booking{booking(model.BookingStatusCancelled)},
			want:     true,
		},
		{
			name:     "completed does not block",
			existing: []model.Booking{booking(model.BookingStatusCompleted)},
			want:     true,
		},
		{
			name: "mixed statuses",
			existing: []model.Booking{
				booking(model.BookingStatusCancelled),
				booking(model.BookingStatusConfirmed),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			bookingRepo := repo_mocks.NewMockBookingRepository(c)
			carRepo := repo_mocks.NewMockCarRepository(c)
			bookingRepo.EXPECT().
				FindByCarAndDateRange(gomock.Any(), carID, rangeStart, rangeEnd).
				Return(tt.existing, nil)

			svc := service.NewBookingService(bookingRepo, carRepo, zap.NewExample().Named("test"))
			got, err := svc.IsCarAvailable(context.Background(), carID, rangeStart, rangeEnd)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
