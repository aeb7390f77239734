package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariebrainware/clinic-api/config"
	"github.com/ariebrainware/clinic-api/endpoint"
	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/service"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/ariebrainware/clinic-api/validation"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

// newServer wires configuration, storage and handlers into an http.Server.
func newServer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, out io.Writer) *http.Server {
	var eventDB *gorm.DB
	if cfg.PersistReqLogs {
		eventDB = db
	}
	events := util.NewEventLogger(out, eventDB)

	v := validation.New(
		validation.WithLocation(cfg.Location()),
		validation.WithPhoneRegion(cfg.PhoneRegion),
	)
	h := endpoint.NewHandler(service.NewPatientService(db, v), service.NewAppointmentService(db, v), events)

	router := endpoint.SetupRouter(endpoint.RouterOptions{
		Config:  cfg,
		Handler: h,
		Redis:   rdb,
		Events:  events,
	})
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	out := util.NewLogWriter(cfg)
	logger := log.New(out, "[SERVER] ", log.LstdFlags|log.Lmsgprefix)

	gin.SetMode(cfg.GinMode)
	gin.DefaultWriter = out

	db, err := openDatabase(cfg, out)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer closeDatabase(db)

	if cfg.SeedOnStartup {
		inserted, err := model.SeedPatients(db)
		if err != nil {
			return err
		}
		if inserted {
			logger.Println("Seeded sample patient")
		}
	}

	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		return err
	}
	defer closeRedis(rdb)

	srv := newServer(cfg, db, rdb, out)

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
