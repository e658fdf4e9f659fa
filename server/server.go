package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	"github.com/Mohfazam/CIVICOS/services"
	"github.com/gin-gonic/gin"
)

// Server wires the HTTP layer to the service and repository layers.
type Server struct {
	Config              *config.Config
	CitizenRepository   db.CitizenRepository
	DirectoryRepository db.DirectoryRepository
	IssueRepository     db.IssueRepository
	CommentRepository   db.CommentRepository
	UpvoteRepository    db.UpvoteRepository
	IssueService        services.IssueService
	ThreadService       services.ThreadService
	CitizenService      services.CitizenService
	DirectoryService    services.DirectoryService
	MediaService        services.MediaService
}

func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		fmt.Sscanf(portEnv, "%d", &port)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("server started on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

// gracefulShutdown drains in-flight requests for up to ten seconds after
// SIGINT or SIGTERM before the process exits.
func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("server exited")
}

// decode binds the request body into v using gin's JSON binding.
func decode(c *gin.Context, v interface{}) error {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
