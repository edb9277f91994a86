// Package http is the local REST gateway, the upward interface the
// presentation layer talks to. Every mutating route goes through the
// session middleware and the per-session rate limiter.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"solartech.app/field-service/pkg/auth"
	"solartech.app/field-service/pkg/device"
	"solartech.app/field-service/pkg/fieldops"
)

type Gateway struct {
	Server           *gin.Engine
	Engine           *fieldops.Engine
	Session          *auth.Session
	RateLimiterStore *fieldops.RateLimiterStore

	// device capabilities backing the field-work routes; nil providers
	// degrade to 503 (camera, mail) or a fix-less start (locator)
	Locator device.Locator
	Camera  device.Camera
	Mailer  device.Mailer
}

func (g *Gateway) GetLimiter(actorID string) *rate.Limiter {
	if g.RateLimiterStore == nil {
		return nil
	}
	return g.RateLimiterStore.GetLimiter(actorID)
}

func (g *Gateway) CheckActorLimiter(actorID string) bool {
	limiter := g.GetLimiter(actorID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (g *Gateway) Setup() {
	g.Server.GET("/healthz", g.HealthCheck)
	g.Server.POST("/auth/login", g.PostLogin)
	g.Server.POST("/auth/logout", g.RequireSession, g.PostLogout)

	interventions := g.Server.Group("/interventions", g.RequireSession)
	{
		interventions.GET("", g.GetInterventions)
		interventions.GET("/unassigned", g.GetUnassignedInterventions)
		interventions.GET("/:id", g.GetIntervention)
		interventions.POST("", g.PostIntervention)
		interventions.PUT("/:id", g.PutIntervention)
		interventions.DELETE("/:id", g.DeleteIntervention)
		interventions.POST("/bulk-assign", g.PostBulkAssign)
		interventions.POST("/close", g.PostCloseInterventions)
		interventions.POST("/:id/start", g.PostStartIntervention)
		interventions.POST("/:id/complete", g.PostCompleteIntervention)
		interventions.POST("/:id/photos", g.PostInterventionPhoto)
		interventions.POST("/:id/report", g.PostInterventionReport)
	}

	appointments := g.Server.Group("/appointments", g.RequireSession)
	{
		appointments.GET("", g.GetAppointments)
		appointments.POST("", g.PostAppointment)
		appointments.PUT("/:id", g.PutAppointment)
		appointments.DELETE("/:id", g.DeleteAppointment)
	}

	companies := g.Server.Group("/companies", g.RequireSession)
	{
		companies.GET("", g.GetCompanies)
		companies.GET("/:id", g.GetCompany)
		companies.POST("", g.PostCompany)
		companies.PUT("/:id", g.PutCompany)
		companies.DELETE("/:id", g.DeleteCompany)
	}

	users := g.Server.Group("/users", g.RequireSession)
	{
		users.GET("", g.GetUsers)
		users.POST("", g.PostUser)
		users.PUT("/:id", g.PutUser)
		users.DELETE("/:id", g.DeleteUser)
	}

	g.Server.GET("/stats", g.RequireSession, g.GetStats)
}

// RequireSession resolves the Bearer token against the active session and
// applies the per-actor rate limit.
func (g *Gateway) RequireSession(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	active := g.Session.Token()
	if token == "" || active == "" || token != active {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	actor := g.Engine.Actor()
	if actor == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if !g.CheckActorLimiter(actor.ID) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

// errStatus maps engine errors onto HTTP statuses.
func errStatus(err error) int {
	switch {
	case errors.Is(err, fieldops.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, fieldops.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, fieldops.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fieldops.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

func (g *Gateway) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
