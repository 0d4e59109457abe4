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
	"golang.org/x/sync/errgroup"

	"splicegen/adapters/excel"
	"splicegen/internal/config"
	"splicegen/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(appConfig.Output.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", appConfig.Output.Dir, err)
	}

	server := ui.NewServer(appConfig, excel.NewAddressReader(), excel.NewTableWriter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	api := &http.Server{Addr: ":" + appConfig.Server.Port, Handler: server.Handler()}
	g.Go(func() error {
		log.Printf("Starting splice server on :%s", appConfig.Server.Port)
		if err := api.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var ops *http.Server
	if appConfig.Ops.Enabled {
		ops = &http.Server{Addr: ":" + appConfig.Ops.Port, Handler: ui.NewOpsRouter()}
		g.Go(func() error {
			log.Printf("Starting ops server (health + pprof) on :%s", appConfig.Ops.Port)
			if err := ops.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := api.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown: %v", err)
		}
		if ops != nil {
			if err := ops.Shutdown(shutdownCtx); err != nil {
				log.Printf("Ops server shutdown: %v", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
