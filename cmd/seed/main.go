package main

import (
	"flag"
	"fmt"
	"math/rand"

	"patitas_backend/internal/app"
	"patitas_backend/internal/auth"
	"patitas_backend/internal/config"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Offline demo-fixture generator. Fills the configured database with
// random caregivers, clients and reviews so the directory and the back
// office have something to show. Never runs as part of the server.

var firstNames = []string{
	"Ana", "Luis", "Carla", "Diego", "Elena", "Franco", "Gabriela",
	"Hernan", "Ines", "Julian", "Lucia", "Martin", "Natalia", "Oscar",
	"Paula", "Ramiro", "Sofia", "Tomas", "Valeria",
}

var lastNames = []string{
	"Garcia", "Rodriguez", "Lopez", "Martinez", "Fernandez", "Sosa",
	"Romero", "Diaz", "Alvarez", "Torres", "Flores", "Acosta",
}

var locations = []string{
	"Palermo, CABA", "Belgrano, CABA", "Caballito, CABA",
	"San Isidro, GBA Norte", "Quilmes, GBA Sur", "Moron, GBA Oeste",
	"La Plata, Buenos Aires", "Tigre, GBA Norte",
}

var services = []string{
	"paseos", "guarderia", "cuidado nocturno", "visitas a domicilio",
	"adiestramiento", "banos",
}

var reviewTexts = []string{
	"Excelente atencion, mi perro volvio feliz.",
	"Muy responsable y puntual.",
	"Buena comunicacion durante toda la estadia.",
	"Cumplio con todo lo acordado.",
	"Mi gata quedo muy bien cuidada, repetiria.",
	"Atento y carinoso con los animales.",
}

func main() {
	caregivers := flag.Int("caregivers", 12, "caregivers to create")
	clients := flag.Int("clients", 8, "clients to create")
	reviews := flag.Int("reviews", 30, "reviews to create")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	flag.Parse()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := app.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	hashedPassword, err := auth.HashPassword("demo123")
	if err != nil {
		logger.Fatal("Failed to hash demo password", "error", err)
	}

	caregiverRepo := repositories.NewCaregiverRepository(db)
	userRepo := repositories.NewUserRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	caregiverIDs := make([]uint, 0, *caregivers)
	for i := 0; i < *caregivers; i++ {
		name := randomName(rng)
		user := &models.User{
			Name:         name,
			Email:        demoEmail(i),
			PasswordHash: hashedPassword,
			Role:         models.UserRoleCaregiver,
		}
		lat := -34.5 - rng.Float64()
		lng := -58.3 - rng.Float64()
		profile := &models.CaregiverProfile{
			Description: fmt.Sprintf("Cuido mascotas en %s desde hace %d anos.", pick(rng, locations), 1+rng.Intn(9)),
			Location:    pick(rng, locations),
			Lat:         &lat,
			Lng:         &lng,
			Rating:      float64(1+rng.Intn(5)) - rng.Float64()*0.5,
		}
		tags := pickSome(rng, services, 1+rng.Intn(3))
		if err := caregiverRepo.CreateWithProfile(user, profile, tags); err != nil {
			logger.Warn("Skipping caregiver", "email", user.Email, "error", err)
			continue
		}
		caregiverIDs = append(caregiverIDs, user.ID)
	}

	clientIDs := make([]uint, 0, *clients)
	for i := 0; i < *clients; i++ {
		name := randomName(rng)
		user := &models.User{
			Name:         name,
			Email:        demoEmail(*caregivers + i),
			PasswordHash: hashedPassword,
			Role:         models.UserRoleClient,
		}
		if err := userRepo.Create(user); err != nil {
			logger.Warn("Skipping client", "email", user.Email, "error", err)
			continue
		}
		clientIDs = append(clientIDs, user.ID)
	}

	created := 0
	if len(caregiverIDs) > 0 && len(clientIDs) > 0 {
		for i := 0; i < *reviews; i++ {
			review := &models.Review{
				CaregiverID: pickID(rng, caregiverIDs),
				ClientID:    pickID(rng, clientIDs),
				Text:        pick(rng, reviewTexts),
				Rating:      1 + rng.Intn(5),
			}
			if err := reviewRepo.Create(review); err != nil {
				logger.Warn("Skipping review", "error", err)
				continue
			}
			created++
		}
	}

	logger.Info("Demo fixtures created",
		"caregivers", len(caregiverIDs),
		"clients", len(clientIDs),
		"reviews", created,
	)
}

func randomName(rng *rand.Rand) string {
	return pick(rng, firstNames) + " " + pick(rng, lastNames)
}

func demoEmail(n int) string {
	return fmt.Sprintf("demo%d@patitas.test", n)
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func pickID(rng *rand.Rand, ids []uint) uint {
	return ids[rng.Intn(len(ids))]
}

func pickSome(rng *rand.Rand, options []string, n int) []string {
	shuffled := append([]string(nil), options...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
