package main

import (
	"stayhub/internal/bookings/events"
	"stayhub/internal/bookings/handler"
	"stayhub/internal/bookings/repository"
	"stayhub/internal/bookings/service"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/app"
	"stayhub/pkg/config"
	"stayhub/pkg/kafka"
	kafka_config "stayhub/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")
	bookingService, cleanup := initServices(cfg)
	defer cleanup()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.BookingService, func()) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewBookingLockRepository(cfg)
	listingRepo := repository.NewMongoListingRepository(cfg)
	propertyRepo := repository.NewMongoPropertyRepository(cfg)
	userRepo := repository.NewMongoUserRepository(cfg)

	publisher, cleanup := initPublisher(cfg)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		listingRepo,
		propertyRepo,
		userRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService, cleanup
}

func initPublisher(cfg *config.Config) (events.Publisher, func()) {
	if cfg.BookingEventsTopic == "" {
		cfg.Log.Info("Booking event publishing disabled (no topic configured)")
		return events.NopPublisher{}, func() {}
	}

	producer, err := kafka.NewProducer(kafka_config.Load(), cfg.BookingEventsTopic, cfg.BookingEventsTopic+".dlq")
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Booking event publishing enabled", "topic", cfg.BookingEventsTopic)
	return events.NewKafkaPublisher(producer, cfg), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
