package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
)

const (
	carsTableName     = `cars`
	bookingsTableName = `bookings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	carColumns = []string{
		"id", "brand", "model", "year", "license_plate",
		"daily_rate", "status", "created_at", "updated_at",
	}
	bookingColumns = []string{
		"id", "car_id", "customer_name", "customer_email", "start_date",
		"end_date", "total_cost", "status", "created_at", "updated_at",
	}
)

type CarPostgres struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCarPostgres(db *sqlx.DB, log *zap.Logger) *CarPostgres {
	return &CarPostgres{
		db:  db,
		log: log.Named("car-repo"),
	}
}

func (r *CarPostgres) Save(ctx context.Context, car model.Car) (model.Car, error) {
	query, args, err := qb.Insert(carsTableName).
		Columns(carColumns...).
		Values(car.ID, car.Brand, car.Model, car.Year, car.LicensePlate,
			car.DailyRate, car.Status, car.CreatedAt, car.UpdatedAt).
		Suffix(`returning *`).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var saved model.Car
	if err := r.db.GetContext(ctx, &saved, query, args...); err != nil {
		r.log.Error("save car", zap.String("q", query), zap.Any("args", args))
		return model.Car{}, err
	}
	return saved, nil
}

func (r *CarPostgres) FindByID(ctx context.Context, id uuid.UUID) (model.Car, error) {
	query, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *CarPostgres) FindAll(ctx context.Context) ([]model.Car, error) {
	query, args, err := qb.Select(carColumns...).
		From(carsTableName).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	cars := make([]model.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarPostgres) Update(ctx context.Context, car model.Car) (model.Car, error) {
	query, args, err := qb.Update(carsTableName).
		Set("brand", car.Brand).
		Set("model", car.Model).
		Set("year", car.Year).
		Set("license_plate", car.LicensePlate).
		Set("daily_rate", car.DailyRate).
		Set("status", car.Status).
		Set("updated_at", car.UpdatedAt).
		Where(sq.Eq{"id": car.ID}).
		Suffix(`returning *`).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var updated model.Car
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		r.log.Error("update car", zap.String("q", query), zap.Any("args", args))
		return model.Car{}, err
	}
	return updated, nil
}

func (r *CarPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := qb.Delete(carsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type BookingPostgres struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewBookingPostgres(db *sqlx.DB, log *zap.Logger) *BookingPostgres {
	return &BookingPostgres{
		db:  db,
		log: log.Named("booking-repo"),
	}
}

// Save relies on the bookings_no_active_overlap exclusion constraint as
// the storage-level guard: a concurrent insert racing past the service
// check comes back as errs.ErrNotAvailable instead of a double booking.
func (r *BookingPostgres) Save(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns(bookingColumns...).
		Values(booking.ID, booking.CarID, booking.CustomerName, booking.CustomerEmail,
			booking.StartDate, booking.EndDate, booking.TotalCost, booking.Status,
			booking.CreatedAt, booking.UpdatedAt).
		Suffix(`returning *`).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var saved model.Booking
	if err := r.db.GetContext(ctx, &saved, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.Booking{}, errs.ErrNotAvailable
		}
		r.log.Error("save booking", zap.String("q", query), zap.Any("args", args))
		return model.Booking{}, err
	}
	return saved, nil
}

func (r *BookingPostgres) FindByID(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *BookingPostgres) FindAll(ctx context.Context) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingPostgres) FindByCarAndDateRange(ctx context.Context, carID uuid.UUID, startDate, endDate model.Date) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"car_id": carID}).
		Where(sq.Lt{"start_date": endDate}).
		Where(sq.Gt{"end_date": startDate}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingPostgres) Update(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query, args, err := qb.Update(bookingsTableName).
		Set("customer_name", booking.CustomerName).
		Set("customer_email", booking.CustomerEmail).
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("total_cost", booking.TotalCost).
		Set("status", booking.Status).
		Set("updated_at", booking.UpdatedAt).
		Where(sq.Eq{"id": booking.ID}).
		Suffix(`returning *`).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var updated model.Booking
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.Booking{}, errs.ErrNotAvailable
		}
		r.log.Error("update booking", zap.String("q", query), zap.Any("args", args))
		return model.Booking{}, err
	}
	return updated, nil
}

func (r *BookingPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := qb.Delete(bookingsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	_ CarRepository     = (*CarPostgres)(nil)
	_ BookingRepository = (*BookingPostgres)(nil)
)
