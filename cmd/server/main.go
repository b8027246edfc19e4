package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"soundpage/internal/handlers"
	"soundpage/internal/static"
	"soundpage/pkg/config"
	"soundpage/web"
)

func main() {
	cfg := config.FromEnv()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Basic server-level timeouts via stdlib server
	srv := &http.Server{
		Addr:              cfg.Address(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var assetFS fs.FS = web.Static()
	if cfg.StaticDir != "" {
		assetFS = os.DirFS(cfg.StaticDir)
	}
	handlers.RegisterRoutes(e, cfg, static.New(assetFS, cfg.StaticURLPath))

	go func() {
		handlers.LogStructured("info", map[string]any{
			"message":    "listening",
			"address":    cfg.Address(),
			"static_dir": cfg.StaticDir,
		})
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	handlers.LogStructured("info", map[string]any{"message": "server stopped"})
}
