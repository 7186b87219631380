// Package server assembles the HTTP API: routes, middleware and CORS.
package server

import (
	"log/slog"
	"net/http"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/amenities"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/reviews"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// APIPrefix is where the versioned routes are mounted.
const APIPrefix = "/api/v1"

type Deps struct {
	DB *db.DB
	// Links is the place/amenity store picked from the storage mode.
	Links db.Links
	Log   *slog.Logger
}

// New returns the gin engine with every route registered.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.MsgNotFound})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		if err := d.DB.PingContext(c.Request.Context()); err != nil {
			d.Log.Warn("health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	amenH := amenities.New(d.DB, d.Links, d.Log)
	revH := reviews.New(d.DB, d.Log)

	v1 := r.Group(APIPrefix)
	{
		v1.GET("/status", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "OK"}) })

		// Place amenities
		v1.GET("/places/:place_id/amenities", amenH.List)
		v1.DELETE("/places/:place_id/amenities/:amenity_id", amenH.Unlink)
		v1.POST("/places/:place_id/amenities/:amenity_id", amenH.Link)

		// Reviews
		v1.GET("/places/:place_id/reviews", revH.List)
		v1.POST("/places/:place_id/reviews", revH.Create)
		v1.GET("/reviews/:review_id", revH.Get)
		v1.DELETE("/reviews/:review_id", revH.Delete)
		v1.PUT("/reviews/:review_id", revH.Update)
	}
	return r
}

// WithCORS allows every origin, as the public hbnb API always has.
func WithCORS(h http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})(h)
}
