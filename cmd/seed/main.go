// Command seed inserts a demo event whose program unlocks shortly after.
package main

import (
	"context"
	"errors"
	"time"

	"go-gin-event-program/config"
	"go-gin-event-program/internal/auth"
	"go-gin-event-program/internal/database"
	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/repository"
	"go-gin-event-program/internal/service"
	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	slug := pflag.String("slug", "soiree-demo", "slug of the demo event")
	name := pflag.String("name", "Soirée démo", "name of the demo event")
	startIn := pflag.Duration("start-in", 2*time.Minute, "delay before the program unlocks")
	replace := pflag.Bool("replace", false, "delete an existing event with the same slug first")
	adminUser := pflag.String("admin-username", "", "also create an organizer account (AUTH_BACKEND=db)")
	adminPassword := pflag.String("admin-password", "", "password of the organizer account")
	pflag.Parse()

	defer logger.Sync()
	log := logger.WithComponent("seed")

	cfg := config.LoadConfig()
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	if *adminUser != "" {
		err := createAdmin(ctx, repository.NewAdminRepository(pool), *adminUser, *adminPassword)
		switch {
		case errors.Is(err, apperrors.ErrUsernameTaken):
			log.Warn("Admin already exists", zap.String("username", *adminUser))
		case err != nil:
			log.Fatal("Failed to create admin", zap.Error(err))
		default:
			log.Info("Admin created", zap.String("username", *adminUser))
		}
	}

	events := service.NewEventService(repository.NewEventRepository(pool), nil)
	if *replace {
		if err := events.Delete(ctx, *slug); err != nil && !errors.Is(err, apperrors.ErrEventNotFound) {
			log.Fatal("Failed to delete existing event", zap.Error(err))
		}
	}

	event, err := events.Create(ctx, demoEvent(*slug, *name, events.Now().Add(*startIn)))
	if err != nil {
		log.Fatal("Failed to create demo event", zap.Error(err))
	}
	log.Info("Demo event created",
		zap.String("slug", event.Slug),
		zap.Time("start_at", event.StartAt),
		zap.Int("steps", len(event.Program)),
	)
}

func createAdmin(ctx context.Context, admins repository.AdminRepository, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = admins.Create(ctx, &model.Admin{Username: username, PasswordHash: hash, IsAdmin: true})
	return err
}

func demoEvent(slug, name string, startAt time.Time) *model.Event {
	endAt := startAt.Add(4 * time.Hour)
	minutes := func(n int) *int { return &n }
	return &model.Event{
		Name:        name,
		Slug:        slug,
		StartAt:     startAt,
		EndAt:       &endAt,
		IsPublished: true,
		Venue: model.Venue{
			Name:    "Le Rocher",
			Address: "12 quai des Brumes, Marseille",
			Geo:     &model.GeoPoint{Lat: 43.2965, Lng: 5.3698},
		},
		Program: []model.ProgramStep{
			{Title: "Accueil", Description: "Cocktail de bienvenue", DurationMin: minutes(30)},
			{Title: "Discours", Description: "Mot des organisateurs", DurationMin: minutes(15)},
			{Title: "Dîner", Description: "Service à table", DurationMin: minutes(90)},
			{Title: "Soirée dansante", Description: "DJ jusqu'à la fin", DurationMin: minutes(120)},
		},
		Menus: []model.MenuItem{
			{Name: "Velouté de potimarron", Tags: []string{"entrée", "végétarien"}},
			{Name: "Filet de dorade", Tags: []string{"plat"}},
			{Name: "Tarte au citron", Tags: []string{"dessert"}},
		},
		Infos: []model.InfoBlock{
			{Key: "dress-code", Title: "Tenue", Content: "Chic décontracté"},
		},
		Media: []model.MediaItem{},
	}
}
