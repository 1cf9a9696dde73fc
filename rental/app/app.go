package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/pkg/kafka"
	"github.com/Astemirdum/rental-service/pkg/logger"
	"github.com/Astemirdum/rental-service/pkg/postgres"
	"github.com/Astemirdum/rental-service/rental/config"
	"github.com/Astemirdum/rental-service/rental/internal/handler"
	"github.com/Astemirdum/rental-service/rental/internal/repository"
	"github.com/Astemirdum/rental-service/rental/internal/server"
	"github.com/Astemirdum/rental-service/rental/internal/service"
	"github.com/Astemirdum/rental-service/rental/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")

	var (
		carRepo     repository.CarRepository
		bookingRepo repository.BookingRepository
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return fmt.Errorf("db init %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("db close", zap.Error(err))
			}
		}()
		carRepo = repository.NewCarPostgres(db, log)
		bookingRepo = repository.NewBookingPostgres(db, log)
	case config.StorageDriverJSONFile:
		var err error
		if carRepo, err = repository.NewCarJSONStore(cfg.Storage.DataDir, log); err != nil {
			return fmt.Errorf("car store init %w", err)
		}
		if bookingRepo, err = repository.NewBookingJSONStore(cfg.Storage.DataDir, log); err != nil {
			return fmt.Errorf("booking store init %w", err)
		}
	case config.StorageDriverMemory:
		carRepo = repository.NewCarMemory()
		bookingRepo = repository.NewBookingMemory()
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	carService := service.NewCarService(carRepo, log)
	bookingService := service.NewBookingService(bookingRepo, carRepo, log)

	var producer sarama.SyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		var err error
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("producer close", zap.Error(err))
			}
		}()
	}

	h := handler.New(carService, bookingService, producer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		return fmt.Errorf("srv.Stop %w", err)
	}

	log.Info("Graceful shutdown finished")
	return nil
}
