package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tablequeue/waitlist/internal/config"
	"github.com/tablequeue/waitlist/internal/handler"
	"github.com/tablequeue/waitlist/internal/middleware"
)

// Deps carries everything RegisterRoutes wires together.  Redis may be nil,
// which turns the cache and rate limiter into passthroughs.  DB may be nil
// in tests; /readyz is only mounted when it is set.
type Deps struct {
	Waitlist  *handler.WaitlistHandler
	DB        handler.Pinger
	Redis     *redis.Client
	Log       zerolog.Logger
	App       config.Config
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
}

// bodyLimit caps request bodies; a waitlist entry is a few hundred bytes.
const bodyLimit = "64K"

// RegisterRoutes mounts the waitlist API on e.  Reads are public; writes are
// guarded by HostAuth, which lets everything through when no secret is
// configured.
func RegisterRoutes(e *echo.Echo, d Deps) {
	// Preflight has to run before routing so OPTIONS on any path is answered.
	e.Pre(middleware.Preflight(d.App.CORSAllowOrigin))

	e.Use(
		echomw.Recover(),
		middleware.RequestLogger(d.Log),
		middleware.AllowOrigin(d.App.CORSAllowOrigin),
		echomw.BodyLimit(bodyLimit),
		middleware.NewTokenBucket(d.RateLimit, d.Redis, d.App.HostJWTSecret, d.Log),
	)

	e.GET("/healthz", handler.Health)
	if d.DB != nil {
		e.GET("/readyz", handler.Ready(d.DB))
	}
	e.GET("/report.html", handler.Report(d.App.ReportFile))

	h := d.Waitlist
	g := e.Group("/waitlist",
		middleware.PurgeOnWrite(d.Cache, d.Redis, d.Log),
		middleware.NewRedisCache(d.Cache, d.Redis, d.Log),
	)
	g.GET("", h.ListAll)
	g.GET("/lastname/:cust_LName", h.ListByLastName)
	g.GET("/:id", h.GetByID)

	host := middleware.HostAuth(d.App.HostJWTSecret, middleware.RoleHost)
	g.POST("", h.Create, host)
	g.PATCH("/:id", h.Update, host)
	g.DELETE("/:id", h.Delete, host)
}
