package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "tourism/internal/config"
	router "tourism/internal/http"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	utils.SetLevel(env.LogLevel)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		utils.Log.Fatalf("cannot connect to database: %v", err)
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = intconfig.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		utils.Log.Fatalf("cannot prepare schema: %v", err)
	}
	utils.Log.Info("connected to MySQL, schema ready")

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.Fatalf("shutdown failed: %v", err)
	}

	utils.Log.Info("server stopped")
}
