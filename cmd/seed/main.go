// Seed loads reference data for local development: airports, airplanes,
// service classes, baggage types, a handful of upcoming flights and an admin
// account. Safe to re-run, inserts skip existing rows.
package main

import (
	"context"
	"log"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/pkg/database"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	airportRepo := repository.NewAirportRepository(db, logger)
	airplaneRepo := repository.NewAirplaneRepository(db, logger)
	flightRepo := repository.NewFlightRepository(db, logger)
	classRepo := repository.NewClassRepository(db, logger)
	baggageTypeRepo := repository.NewBaggageTypeRepository(db, logger)
	accountRepo := repository.NewAccountRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// Service classes
	for _, name := range []entity.ClassName{entity.ClassEconomy, entity.ClassBusiness, entity.ClassFirst} {
		class := &entity.ServiceClass{
			BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
			Name:       name,
		}
		if err := classRepo.Create(ctx, class); err != nil {
			logger.Fatal("Failed to seed class", zap.Error(err))
		}
	}

	// Baggage type catalog
	describe := func(s string) *string { return &s }
	baggageTypes := []*entity.BaggageType{
		{Name: "STANDARD", MaxWeightKg: 23, BasePrice: 2000, Description: describe("Checked bag up to 23 kg")},
		{Name: "EXTRA", MaxWeightKg: 32, BasePrice: 3500, Description: describe("Heavy checked bag up to 32 kg")},
		{Name: "SPORT", MaxWeightKg: 30, BasePrice: 5000, Description: describe("Sports equipment")},
		{Name: "OVERSIZE", MaxWeightKg: 50, BasePrice: 8000, Description: describe("Oversize cargo up to 50 kg")},
	}
	for _, baggageType := range baggageTypes {
		baggageType.BaseSimple = entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now}
		if err := baggageTypeRepo.Create(ctx, baggageType); err != nil {
			logger.Fatal("Failed to seed baggage type", zap.Error(err))
		}
	}

	// Airports
	airports := []*entity.Airport{
		{Code: "SVO", Name: "Sheremetyevo", City: "Moscow", Country: "Russia"},
		{Code: "LED", Name: "Pulkovo", City: "Saint Petersburg", Country: "Russia"},
		{Code: "AER", Name: "Sochi International", City: "Sochi", Country: "Russia"},
		{Code: "KZN", Name: "Kazan International", City: "Kazan", Country: "Russia"},
	}
	for _, airport := range airports {
		if err := airportRepo.Create(ctx, airport); err != nil {
			logger.Fatal("Failed to seed airport", zap.Error(err))
		}
	}

	// Airplanes
	airplanes := []*entity.Airplane{
		{
			Base:               entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			Model:              "Airbus A320",
			RegistrationNumber: "RA-73001",
			Capacity:           180, EconomyCapacity: 150, BusinessCapacity: 24, FirstCapacity: 6,
			Rows: 30, SeatsRow: 6,
		},
		{
			Base:               entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			Model:              "Boeing 737-800",
			RegistrationNumber: "RA-73002",
			Capacity:           160, EconomyCapacity: 138, BusinessCapacity: 18, FirstCapacity: 4,
			Rows: 27, SeatsRow: 6,
		},
	}
	for _, airplane := range airplanes {
		if existing, _ := airplaneRepo.FindByRegistration(ctx, airplane.RegistrationNumber); existing != nil {
			airplane.ID = existing.ID
			continue
		}
		if err := airplaneRepo.Create(ctx, airplane); err != nil {
			logger.Fatal("Failed to seed airplane", zap.Error(err))
		}
	}

	// Upcoming flights
	routes := []struct {
		from, to string
		airplane *entity.Airplane
		depart   time.Time
		duration time.Duration
	}{
		{"SVO", "LED", airplanes[0], now.Add(48 * time.Hour), 90 * time.Minute},
		{"LED", "SVO", airplanes[0], now.Add(72 * time.Hour), 90 * time.Minute},
		{"SVO", "AER", airplanes[1], now.Add(96 * time.Hour), 150 * time.Minute},
		{"KZN", "SVO", airplanes[1], now.Add(120 * time.Hour), 100 * time.Minute},
	}
	for _, route := range routes {
		flight := &entity.Flight{
			Base:                 entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			Number:               utils.GenerateFlightNumber(),
			AirplaneID:           route.airplane.ID,
			DepartureAirportCode: route.from,
			ArrivalAirportCode:   route.to,
			DepartureTime:        route.depart,
			ArrivalTime:          route.depart.Add(route.duration),
			Status:               entity.FlightStatusScheduled,
		}
		if err := flightRepo.Create(ctx, flight); err != nil {
			logger.Fatal("Failed to seed flight", zap.Error(err))
		}
	}

	// Admin account
	if existing, _ := accountRepo.FindByEmail(ctx, "admin@example.com"); existing == nil {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			logger.Fatal("Failed to hash admin password", zap.Error(err))
		}
		account := &entity.Account{
			Base:         entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			Email:        "admin@example.com",
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			logger.Fatal("Failed to seed admin account", zap.Error(err))
		}
		user := &entity.User{
			Base:      entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
			AccountID: account.ID,
			FirstName: "Admin",
			LastName:  "Admin",
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatal("Failed to seed admin profile", zap.Error(err))
		}
	}

	logger.Info("Seed data loaded")
}
