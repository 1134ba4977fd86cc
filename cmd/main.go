package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "contacts_api/docs"
	"contacts_api/internal/handlers"
	"contacts_api/internal/logger"
	"contacts_api/internal/repository"
	"contacts_api/internal/repository/db"
	"contacts_api/internal/server"
	"contacts_api/internal/service"

	"github.com/spf13/viper"
)

// @title                      Contacts API
// @version                    1.0
// @description                Multi-tenant contact and address book. Protected routes take the raw session token in the Authorization header.
// @host                       localhost:8080
// @BasePath                   /
// @securityDefinitions.apikey TokenAuth
// @in                         header
// @name                       Authorization
func main() {
	// load config.yml; a missing file falls back to defaults and env
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		MaxPerPage: viper.GetInt("pagination.max_per_page"),
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(server.Config{
		ReadHeaderTimeout: viper.GetDuration("server.read_header_timeout"),
		WriteTimeout:      viper.GetDuration("server.write_timeout"),
		IdleTimeout:       viper.GetDuration("server.idle_timeout"),
	})
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, viper.GetDuration("server.shutdown_timeout"), log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "app.db")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("pagination.max_per_page", 100)
	viper.SetDefault("server.read_header_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)

	// CONTACTS_PORT, CONTACTS_DB_PATH, ...
	viper.SetEnvPrefix("contacts")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// openDB opens the SQLite database and brings its schema up to date.
func openDB(log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPath := viper.GetString("db.path")
	log.Infow("opening database", "path", dbPath)
	return db.InitDB(ctx, dbPath, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
