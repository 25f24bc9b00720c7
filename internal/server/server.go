// Package server exposes the thin HTTP surface around the game registry: the
// WebSocket upgrade endpoint, process liveness, and the room listing.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/verdict-game/verdict-backend/internal/game"
)

type Server struct {
	cfg      *Config
	registry *game.Registry
}

func NewServer(cfg *Config, registry *game.Registry) *Server {
	if cfg == nil {
		cfg = NewConfig()
	}
	registry.MinPlayersToStart = cfg.MinPlayersToStart
	registry.MaxPlayersPerRoom = cfg.MaxPlayersPerRoom
	return &Server{
		cfg:      cfg,
		registry: registry,
	}
}

// CreateServer builds the HTTP server with timeouts suited for long-lived
// WebSocket upgrades on the same listener.
func (s *Server) CreateServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Port,
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Minute,
	}
}

// ShutdownServer gracefully stops the HTTP server and tears down every live
// room so connected clients hear why they were dropped.
func (s *Server) ShutdownServer(httpServer *http.Server, timeout time.Duration) error {
	log.Println("Shutting down HTTP server...")

	s.registry.CloseAllRooms("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		return err
	}

	log.Println("HTTP server shutdown completed")
	return nil
}
