package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/clinic-api/config"
	_ "github.com/ariebrainware/clinic-api/docs"
	"github.com/ariebrainware/clinic-api/middleware"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions collects what the router needs beyond the handlers. Redis
// is optional; without it rate limiting is kept in process.
type RouterOptions struct {
	Config  *config.Config
	Handler *Handler
	Redis   *redis.Client
	Events  *util.EventLogger
}

// SetupRouter builds the gin engine with middleware and every route.
func SetupRouter(opts RouterOptions) *gin.Engine {
	cfg := opts.Config
	h := opts.Handler

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateLimitWindow,
		Client: opts.Redis,
		Events: opts.Events,
	}))
	router.Use(middleware.EndpointCallLogger(opts.Events))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s! Visit /swagger/index.html for the API documentation.", cfg.AppName),
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	patients := router.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/", h.ListPatients)
		patients.POST("", h.CreatePatient)
		patients.POST("/", h.CreatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
		patients.GET("/:id/appointments", h.ListPatientAppointments)
	}

	appointments := router.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.POST("/", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}

	router.NoRoute(func(c *gin.Context) {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Route not found",
			Err: fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	return router
}
