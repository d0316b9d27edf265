package app

import (
	"EasyToLearn/internal/app/server"
	"EasyToLearn/internal/config"
	"EasyToLearn/internal/delivery/http"
	"EasyToLearn/internal/service"
	"EasyToLearn/internal/service/auth"
	"EasyToLearn/internal/service/content"
	"EasyToLearn/internal/service/session"
	"EasyToLearn/internal/service/social"
	"EasyToLearn/internal/service/upload"
	"EasyToLearn/internal/storage/bolt"
	"EasyToLearn/pkg/logger"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.FatalErr("error opening record store", err)
	}
	defer store.Close()

	sessions := session.NewStore(log, store)
	repository := content.NewRepository(log, store, sessions)
	uploads := upload.NewService(cfg.Upload.MaxBytes)
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, "easytolearn", cfg.JWT.AccessTTL)

	var googleProvider *social.GoogleProvider
	if cfg.Google.ClientID != "" {
		googleProvider = social.NewGoogleProvider(social.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       cfg.Google.Scopes,
		})
	}

	u := service.Collection{
		Sessions: sessions,
		Content:  repository,
		Uploads:  uploads,
		JWT:      jwtManager,
		Social:   googleProvider,
	}

	r := http.InitRoutes(log, cfg.HTTPServer.AllowOrigins, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
