package api

import (
	"context"
	"crypto/rsa"
	"math/rand"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/bitmark-sdk-go/account"

	"github.com/tsnevan4204/health-app-sub000/external/blobstore"
	"github.com/tsnevan4204/health-app-sub000/external/healthdata"
	"github.com/tsnevan4204/health-app-sub000/external/ledger"
	"github.com/tsnevan4204/health-app-sub000/logmodule"
	"github.com/tsnevan4204/health-app-sub000/pipeline"
	"github.com/tsnevan4204/health-app-sub000/store"
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
	store store.FitmintStore

	// External services
	blobStore    blobstore.Store
	healthSource healthdata.Source
	minter       ledger.Minter

	// Upload session orchestrator
	uploader *pipeline.Uploader

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// service account
	bitmarkAccount *account.AccountV2

	// randomness for synthetic demo ages
	rng *rand.Rand
}

// NewServer new instance of server
func NewServer(
	fitmintStore store.FitmintStore,
	blobStore blobstore.Store,
	healthSource healthdata.Source,
	minter ledger.Minter,
	uploader *pipeline.Uploader,
	jwtKey *rsa.PrivateKey,
	bitmarkAccount *account.AccountV2,
	rng *rand.Rand) *Server {
	return &Server{
		store:          fitmintStore,
		blobStore:      blobStore,
		healthSource:   healthSource,
		minter:         minter,
		uploader:       uploader,
		jwtPrivateKey:  jwtKey,
		bitmarkAccount: bitmarkAccount,
		rng:            rng,
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
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	datasetRoute := apiRoute.Group("/datasets")
	{
		datasetRoute.POST("", s.uploadDataset)
		datasetRoute.GET("", s.listDatasets)
		datasetRoute.GET("/:datasetID", s.getDataset)
		datasetRoute.GET("/:datasetID/manifest", s.getDatasetManifest)
	}

	apiRoute.GET("/biological-age", s.biologicalAge)

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
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	// Ping blob store
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := s.blobStore.Ping(ctx); shouldInterupt(err, c) {
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
				"version":                viper.GetString("server.version"),
				"bitmark_account_number": s.bitmarkAccount.AccountNumber(),
			},
			"metrics":        viper.GetStringMap("metrics"),
			"system_version": "Fitmint 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
