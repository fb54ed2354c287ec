package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"roomNest/internal/api"
	"roomNest/internal/assets"
	"roomNest/internal/config"
	"roomNest/internal/credentials"
	"roomNest/internal/geo"
	"roomNest/internal/handlers"
	"roomNest/internal/services"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger

	authService *services.AuthService
	assistant   *services.AssistantService

	roomHandler       *handlers.RoomHandler
	roomieHandler     *handlers.RoomieHandler
	authHandler       *handlers.AuthHandler
	moderationHandler *handlers.ModerationHandler
	geoHandler        *handlers.GeoHandler
	assetsHandler     *handlers.AssetsHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	backend := api.NewClient(cfg.Backend.BaseURL, &http.Client{}, credentials.FromContext{})
	sessions := credentials.NewSessionStore(rdb, cfg.SessionTTL())

	authService := &services.AuthService{API: backend, Sessions: sessions}
	roomService := &services.RoomService{API: backend, Cache: rdb}
	roomieService := &services.RoomieService{API: backend}
	moderationService := &services.ModerationService{API: backend}

	assistant, err := services.LoadAssistantService(cfg.Assistant.KnowledgeBase)
	if err != nil {
		return nil, err
	}

	var checker assets.Checker
	if cfg.Assets.S3.Bucket != "" {
		checker, err = assets.NewS3Checker(assets.S3Config{
			Bucket:    cfg.Assets.S3.Bucket,
			Prefix:    cfg.Assets.S3.Prefix,
			Region:    cfg.Assets.S3.Region,
			Endpoint:  cfg.Assets.S3.Endpoint,
			AccessKey: cfg.Assets.S3.AccessKey,
			SecretKey: cfg.Assets.S3.SecretKey,
		})
		if err != nil {
			return nil, err
		}
	} else {
		checker = assets.NewHTTPChecker(cfg.Assets.BaseURL, &http.Client{})
	}

	geocoder := geo.NewGeocoder(&http.Client{}, cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent)

	app := &application{
		cfg:         cfg,
		errorLog:    errorLog,
		infoLog:     infoLog,
		authService: authService,
		assistant:   assistant,

		roomHandler:       &handlers.RoomHandler{Service: roomService},
		roomieHandler:     &handlers.RoomieHandler{Service: roomieService},
		authHandler:       &handlers.AuthHandler{Service: authService, CookieTTL: int(cfg.SessionTTL().Seconds())},
		moderationHandler: &handlers.ModerationHandler{Service: moderationService},
		geoHandler:        &handlers.GeoHandler{Geocoder: geocoder},
		assetsHandler:     &handlers.AssetsHandler{Prober: assets.NewProber(checker)},
	}
	return app, nil
}
