package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
	"github.com/Astemirdum/rental-service/rental/internal/repository"
)

func testCar(brand string) model.Car {
	return model.Car{
		ID:           uuid.New(),
		Brand:        brand,
		Model:        "Camry",
		Year:         2022,
		LicensePlate: "ABC-123",
		DailyRate:    50.0,
		Status:       model.CarStatusAvailable,
		CreatedAt:    time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testBooking(carID uuid.UUID, start model.Date, days int, status model.BookingStatus) model.Booking {
	return model.Booking{
		ID:            uuid.New(),
		CarID:         carID,
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		StartDate:     start,
		EndDate:       start.AddDays(days),
		TotalCost:     float64(days) * 50.0,
		Status:        status,
		CreatedAt:     time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCarJSONStore_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := repository.NewCarJSONStore(t.TempDir(), zap.NewExample().Named("test"))
	require.NoError(t, err)

	car := testCar("Toyota")
	saved, err := store.Save(ctx, car)
	require.NoError(t, err)
	require.Equal(t, car.ID, saved.ID)

	found, err := store.FindByID(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, car.Brand, found.Brand)
	require.Equal(t, model.CarStatusAvailable, found.Status)

	found.Status = model.CarStatusMaintenance
	updated, err := store.Update(ctx, found)
	require.NoError(t, err)
	require.Equal(t, model.CarStatusMaintenance, updated.Status)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	deleted, err := store.Delete(ctx, car.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = store.Delete(ctx, car.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = store.FindByID(ctx, car.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestCarJSONStore_FileShape(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := repository.NewCarJSONStore(dir, zap.NewExample().Named("test"))
	require.NoError(t, err)

	_, err = store.Save(ctx, testCar("Toyota"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "cars.json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"licensePlate": "ABC-123"`)
	require.Contains(t, string(raw), `"status": "available"`)
	require.Contains(t, string(raw), `"dailyRate": 50`)
}

func TestBookingJSONStore_FindByCarAndDateRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := repository.NewBookingJSONStore(t.TempDir(), zap.NewExample().Named("test"))
	require.NoError(t, err)

	carID := uuid.New()
	otherCarID := uuid.New()
	base := model.NewDate(2026, time.September, 10)

	inRange := testBooking(carID, base, 5, model.BookingStatusConfirmed)
	cancelledInRange := testBooking(carID, base.AddDays(1), 2, model.BookingStatusCancelled)
	touchingBefore := testBooking(carID, base.AddDays(-4), 4, model.BookingStatusConfirmed)
	otherCar := testBooking(otherCarID, base, 5, model.BookingStatusConfirmed)
	for _, b := range []model.Booking{inRange, cancelledInRange, touchingBefore, otherCar} {
		_, err := store.Save(ctx, b)
		require.NoError(t, err)
	}

	got, err := store.FindByCarAndDateRange(ctx, carID, base, base.AddDays(5))
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	// range intersection only: the cancelled booking still matches, the one
	// ending exactly on the range start and the other car's booking do not
	require.ElementsMatch(t, []uuid.UUID{inRange.ID, cancelledInRange.ID}, ids)
}

func TestBookingJSONStore_FileShape(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := repository.NewBookingJSONStore(dir, zap.NewExample().Named("test"))
	require.NoError(t, err)

	start := model.NewDate(2026, time.September, 10)
	_, err = store.Save(ctx, testBooking(uuid.New(), start, 2, model.BookingStatusPending))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"startDate": "2026-09-10"`)
	require.Contains(t, string(raw), `"endDate": "2026-09-12"`)
	require.Contains(t, string(raw), `"status": "pending"`)
}

func TestBookingJSONStore_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	log := zap.NewExample().Named("test")

	store, err := repository.NewBookingJSONStore(dir, log)
	require.NoError(t, err)
	booking := testBooking(uuid.New(), model.NewDate(2026, time.September, 10), 2, model.BookingStatusPending)
	_, err = store.Save(ctx, booking)
	require.NoError(t, err)

	reopened, err := repository.NewBookingJSONStore(dir, log)
	require.NoError(t, err)
	found, err := reopened.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, booking.CustomerName, found.CustomerName)
	require.True(t, found.StartDate.Equal(booking.StartDate))
}
