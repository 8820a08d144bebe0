package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/handlers"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Start serves until ctx is cancelled, then drains in-flight requests.
func Start(ctx context.Context, cfg *config.Config) error {
	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	defer sqlDB.Close()

	gin.SetMode(cfg.GinMode)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, db, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logrus.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func NewRouter(cfg *config.Config, db *gorm.DB, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	metrics := middleware.NewHTTPMetrics(registry)

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			middleware.Logger(c).WithField("panic", recovered).Error("Recovered from panic")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		}),
		metrics.Metrics(),
		middleware.DatabaseMiddleware(db, cfg.RequestTimeout),
		middleware.FlashMiddleware(helpers.NewFlashStore(cfg.SecretKey)),
	)

	setupRoutes(r, registry)
	return r
}

func setupRoutes(r *gin.Engine, registry *prometheus.Registry) {
	r.GET("/", handlers.Home)
	r.GET("/healthz", handlers.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.NoRoute(handlers.NotFound)

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/create", handlers.NewVenueForm)
		venues.POST("/create", handlers.CreateVenue)
		venues.GET("/:id", handlers.GetVenue)
		venues.DELETE("/:id", handlers.DeleteVenue)
		venues.GET("/:id/edit", handlers.EditVenueForm)
		venues.POST("/:id/edit", handlers.UpdateVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/create", handlers.NewArtistForm)
		artists.POST("/create", handlers.CreateArtist)
		artists.GET("/:id", handlers.GetArtist)
		artists.GET("/:id/edit", handlers.EditArtistForm)
		artists.POST("/:id/edit", handlers.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.GET("/create", handlers.NewShowForm)
		shows.POST("/create", handlers.CreateShow)
	}
}
