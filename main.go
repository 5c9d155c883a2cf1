package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelbook/internal/config"
	router "travelbook/internal/http"
	"travelbook/internal/http/handlers"
	"travelbook/internal/kv"
	"travelbook/internal/mail"
	"travelbook/internal/services"
	"travelbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	st := store.New(store.DefaultSeed())

	var sessionKV kv.Store
	if env.RedisAddr != "" {
		sessionKV = kv.NewRedisStore(env.RedisAddr, "travelbook:session:")
		log.Printf("session storage: redis at %s", env.RedisAddr)
	} else {
		fileKV, err := kv.NewFileStore(env.SessionDir)
		if err != nil {
			log.Fatalf("failed to prepare session dir: %v", err)
		}
		sessionKV = fileKV
		log.Printf("session storage: files under %s", env.SessionDir)
	}

	var mailer *mail.Mailer
	if env.SMTPHost != "" {
		mailer = mail.NewMailer(mail.Config{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Username: env.SMTPUsername,
			Password: env.SMTPPassword,
			From:     env.MailFrom,
		})
		log.Printf("booking confirmation mail enabled via %s:%d", env.SMTPHost, env.SMTPPort)
	}

	sessions := services.NewSessionService(st, sessionKV)
	sessions.Initialize()

	handler := handlers.Handler{
		Store:    st,
		Search:   services.SearchService{Store: st},
		Sessions: sessions,
		Flow: services.FlowService{
			Store:    st,
			Bookings: services.BookingService{Store: st},
			Mailer:   mailer,
		},
		JWTSecret: []byte(env.JWTSecret),
	}

	r := router.NewRouter(env, handler)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
