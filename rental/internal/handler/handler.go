package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/pkg/kafka"
	md "github.com/Astemirdum/rental-service/pkg/middleware"
	"github.com/Astemirdum/rental-service/pkg/validate"
	"github.com/Astemirdum/rental-service/rental/internal/errs"
	"github.com/Astemirdum/rental-service/rental/internal/model"
	_ "github.com/Astemirdum/rental-service/swagger"
)

type Handler struct {
	carService     CarService
	bookingService BookingService
	enqueuer       Enqueuer
	log            *zap.Logger
}

func New(carService CarService, bookingService BookingService, producer sarama.SyncProducer, log *zap.Logger) *Handler {
	return &Handler{
		carService:     carService,
		bookingService: bookingService,
		enqueuer:       NewEnqueuer(producer),
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()

	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodOptions, http.MethodHead,
			http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/cars", h.CreateCar)
	api.GET("/cars", h.ListCars)
	api.GET("/cars/:carId", h.GetCar)
	api.PATCH("/cars/:carId/status", h.UpdateCarStatus)
	api.DELETE("/cars/:carId", h.DeleteCar)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:bookingId", h.GetBooking)
	api.PATCH("/bookings/:bookingId/cancel", h.CancelBooking)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Books a car for a half-open [startDate, endDate) range.
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        input body model.CreateBookingRequest true "create booking"
// @Success      201 {object} model.Booking
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	h.log.Info("booking attempt",
		zap.String("carId", req.CarID.String()),
		zap.String("customer", req.CustomerName),
		zap.String("startDate", req.StartDate.String()),
		zap.String("endDate", req.EndDate.String()),
	)

	booking, err := h.bookingService.CreateBooking(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCarNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrNotAvailable),
			errors.Is(err, errs.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.log.Error("create booking", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create booking")
	}

	h.enqueueBookingEvent(kafka.EventBookingCreated, booking)

	return c.JSON(http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         Booking
// @Produce      json
// @Param        bookingId path string true "booking id"
// @Success      200 {object} model.Booking
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /bookings/{bookingId} [get]
func (h *Handler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is invalid")
	}

	booking, err := h.bookingService.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		h.log.Error("get booking", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get booking")
	}
	return c.JSON(http.StatusOK, booking)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Marks the booking cancelled. Cancelling again is a no-op.
// @Tags         Booking
// @Produce      json
// @Param        bookingId path string true "booking id"
// @Success      200 {object} model.Booking
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /bookings/{bookingId}/cancel [patch]
func (h *Handler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is invalid")
	}

	booking, err := h.bookingService.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		h.log.Error("cancel booking", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to cancel booking")
	}

	h.enqueueBookingEvent(kafka.EventBookingCancelled, booking)

	return c.JSON(http.StatusOK, booking)
}

// CreateCar godoc
// @Summary      Create car
// @Tags         Car
// @Accept       json
// @Produce      json
// @Param        input body model.CreateCarRequest true "create car"
// @Success      201 {object} model.Car
// @Failure      400 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /cars [post]
func (h *Handler) CreateCar(c echo.Context) error {
	var req model.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.carService.CreateCar(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.log.Error("create car", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create car")
	}
	return c.JSON(http.StatusCreated, car)
}

// ListCars godoc
// @Summary      List cars
// @Description  Lists cars. With startDate and endDate only cars free for
// @Description  the range come back, with availableOnly only cars in
// @Description  available status.
// @Tags         Car
// @Produce      json
// @Param        availableOnly query bool false "only cars in available status"
// @Param        startDate query string false "range start (YYYY-MM-DD)"
// @Param        endDate query string false "range end (YYYY-MM-DD)"
// @Success      200 {array} model.Car
// @Failure      400 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /cars [get]
func (h *Handler) ListCars(c echo.Context) error {
	ctx := c.Request().Context()

	startParam, endParam := c.QueryParam("startDate"), c.QueryParam("endDate")
	if startParam != "" && endParam != "" {
		startDate, err := model.ParseDate(startParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "startDate is invalid")
		}
		endDate, err := model.ParseDate(endParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "endDate is invalid")
		}
		if !endDate.After(startDate) {
			return echo.NewHTTPError(http.StatusBadRequest, "endDate must be after startDate")
		}

		cars, err := h.bookingService.ListAvailableCarsByDate(ctx, startDate, endDate)
		if err != nil {
			h.log.Error("list cars by date", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list cars")
		}
		return c.JSON(http.StatusOK, cars)
	}

	var availableOnly bool
	if v := c.QueryParam("availableOnly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "availableOnly is invalid")
		}
		availableOnly = parsed
	}

	var (
		cars []model.Car
		err  error
	)
	if availableOnly {
		cars, err = h.carService.ListAvailableCars(ctx)
	} else {
		cars, err = h.carService.ListCars(ctx)
	}
	if err != nil {
		h.log.Error("list cars", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list cars")
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary      Get car
// @Tags         Car
// @Produce      json
// @Param        carId path string true "car id"
// @Success      200 {object} model.Car
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /cars/{carId} [get]
func (h *Handler) GetCar(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "carId is invalid")
	}

	car, err := h.carService.GetCar(c.Request().Context(), carID)
	if err != nil {
		h.log.Error("get car", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get car")
	}
	if car == nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrCarNotFound.Error())
	}
	return c.JSON(http.StatusOK, car)
}

// UpdateCarStatus godoc
// @Summary      Update car status
// @Tags         Car
// @Accept       json
// @Produce      json
// @Param        carId path string true "car id"
// @Param        input body model.UpdateCarStatusRequest true "new status"
// @Success      200 {object} model.Car
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /cars/{carId}/status [patch]
func (h *Handler) UpdateCarStatus(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "carId is invalid")
	}
	var req model.UpdateCarStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.carService.UpdateCarStatus(c.Request().Context(), carID, req.Status)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.log.Error("update car status", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update car status")
	}
	if car == nil {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrCarNotFound.Error())
	}
	return c.JSON(http.StatusOK, car)
}

// DeleteCar godoc
// @Summary      Delete car
// @Description  Removes the car. Its bookings stay on record.
// @Tags         Car
// @Param        carId path string true "car id"
// @Success      204
// @Failure      400 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Failure      500 {object} echo.HTTPError
// @Router       /cars/{carId} [delete]
func (h *Handler) DeleteCar(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "carId is invalid")
	}

	deleted, err := h.carService.DeleteCar(c.Request().Context(), carID)
	if err != nil {
		h.log.Error("delete car", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete car")
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrCarNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) enqueueBookingEvent(event kafka.EventType, booking model.Booking) {
	if err := h.enqueuer.Enqueue(kafka.BookingEventsTopic, kafka.BookingEvent{
		Type:       event,
		BookingUID: booking.ID.String(),
		CarUID:     booking.CarID.String(),
		StartDate:  booking.StartDate.String(),
		EndDate:    booking.EndDate.String(),
		TotalCost:  booking.TotalCost,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		h.log.Warn("enqueue booking event", zap.Error(err))
	}
}
