package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/safe-response/safe-api/external/geoinfo"
	"github.com/safe-response/safe-api/logmodule"
	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.SafeCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer, nil disables push delivery and leaves pending
	// notifications to the background sweep
	backgroundEnqueuer *machinery.Server

	// optional forward geocoder for free-text locations
	geoClient geoinfo.GeoInfo
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	geoClient geoinfo.GeoInfo) *Server {
	return &Server{
		store:              store.NewSafeStore(ormDB),
		jwtPrivateKey:      jwtKey,
		backgroundEnqueuer: backgroundEnqueuer,
		geoClient:          geoClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)

		accountRoute.GET("", s.requireRoles(schema.RoleAdmin), s.listUsers)
		accountRoute.PUT("/:userID/role", s.requireRoles(schema.RoleAdmin), s.updateUserRole)
		accountRoute.PUT("/:userID/deactivate", s.requireRoles(schema.RoleAdmin), s.deactivateUser)
	}

	helpRoute := apiRoute.Group("/helprequests")
	{
		helpRoute.POST("", s.createHelpRequest)
		helpRoute.GET("", s.listHelpRequests)
		helpRoute.GET("/my-requests", s.listMyHelpRequests)
		helpRoute.GET("/nearby", s.requireRoles(schema.RoleAdmin, schema.RoleResponder), s.listNearbyHelpRequests)
		helpRoute.GET("/:helpRequestID", s.getHelpRequest)
		helpRoute.PUT("/:helpRequestID/assign", s.requireRoles(schema.RoleAdmin, schema.RoleResponder), s.assignHelpRequest)
		helpRoute.PUT("/:helpRequestID/status", s.updateHelpRequestStatus)
		helpRoute.PUT("/:helpRequestID/cancel", s.cancelHelpRequest)
	}

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.POST("", s.createDonation)
		donationRoute.GET("/my", s.listMyDonations)
		donationRoute.GET("", s.requireRoles(schema.RoleAdmin), s.listAllDonations)
		donationRoute.PUT("/:donationID/status", s.requireRoles(schema.RoleAdmin), s.updateDonationStatus)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("/my", s.listMyNotifications)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("", s.listActiveAlerts)
		alertRoute.POST("", s.requireRoles(schema.RoleAdmin), s.createAlert)
		alertRoute.PUT("/:alertID/resolve", s.requireRoles(schema.RoleAdmin), s.resolveAlert)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "SAFE Portal 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
