package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/member-registry/cliparse"
	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/recordstore"
	"github.com/danielhkuo/member-registry/router"
	"github.com/danielhkuo/member-registry/session"
)

func main() {
	var err error

	// Load .env if present (local development)
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Prepare the credential store (seeds the default admin on first run)
	creds := credstore.New(cfg.UsersFile)
	if err := creds.Initialize(); err != nil {
		slog.Error("credential store initialization failed", "error", err)
		os.Exit(1)
	}

	// Prepare the record store (writes the CSV header on first run)
	records := recordstore.New(cfg.DataFile)
	if err := records.Initialize(); err != nil {
		slog.Error("record store initialization failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Stores ready", "users_file", cfg.UsersFile, "data_file", cfg.DataFile)

	// Server-side session store (memory only, lost on restart)
	sessions := session.NewManager(cfg.SessionTTL)

	// Create router
	mux := router.NewRouter(creds, records, sessions, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
