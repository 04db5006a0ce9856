package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/tourney/internal/middleware"
	"github.com/DhavalSuthar-24/tourney/internal/tournament"
	"github.com/DhavalSuthar-24/tourney/pkg/metrics"
	"github.com/DhavalSuthar-24/tourney/pkg/responses"
	"github.com/DhavalSuthar-24/tourney/pkg/validator"
)

// Options controls the ambient routes of the engine.
type Options struct {
	ServiceName string
	// Registry receives the HTTP collectors and backs /metrics. Nil disables both.
	Registry *prometheus.Registry
}

// SetupRoutes builds the engine around an already constructed controller.
func SetupRoutes(db *gorm.DB, tc *tournament.TournamentController, opts Options) *gin.Engine {
	validator.Register()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(responses.MethodNotAllowed)
	r.NoRoute(responses.NotFound)

	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT/DELETE
	if opts.Registry != nil {
		r.Use(metrics.NewHTTPMetrics(opts.ServiceName, opts.Registry).Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler(opts.Registry)))
	}

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			responses.SendErrors(c, http.StatusServiceUnavailable, "database unavailable: "+err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	tournament.RegisterRoutes(api, tc)

	return r
}

// NewRouter wires the gorm-backed tournament stack and returns the engine.
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	service := tournament.NewTournamentService(
		tournament.NewTournamentRepository(db),
		tournament.NewPlayerRepository(db),
	)
	return SetupRoutes(db, tournament.NewTournamentController(service), opts)
}
