package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/verdict-game/verdict-backend/internal/game"
	"github.com/verdict-game/verdict-backend/internal/server"
	"github.com/verdict-game/verdict-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := server.NewConfigFromEnv()
	registry := game.NewRegistry(utils.NewCodeGenerator())
	srv := server.NewServer(cfg, registry)

	reaperCtx, stopReaper := context.WithCancel(context.Background())
	go registry.RunReaper(reaperCtx, cfg.ReaperInterval)

	httpServer := srv.CreateServer()

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("%v received, shutting down", sig)

	stopReaper()
	if err := srv.ShutdownServer(httpServer, 10*time.Second); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
	}
}
