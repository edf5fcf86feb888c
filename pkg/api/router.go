package api

import (
	"context"
	"net/http"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/api/builds"
	"github.com/LambdaTest/statusbridge/pkg/api/health"
	"github.com/LambdaTest/statusbridge/pkg/api/middleware"
	apiutils "github.com/LambdaTest/statusbridge/pkg/api/utils"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Router represents the routes for the http server.
type Router struct {
	cfg       *config.Config
	signalCtx context.Context
	notifier  core.Notifier
	logger    lumber.Logger
}

// New returns a new Router.
// signalCtx is cancelled once shutdown starts so /health starts failing.
func New(
	signalCtx context.Context,
	cfg *config.Config,
	notifier core.Notifier,
	logger lumber.Logger,
) Router {
	return Router{
		cfg:       cfg,
		signalCtx: signalCtx,
		notifier:  notifier,
		logger:    logger,
	}
}

// Handler function will perform all route operations
func (r *Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	var trans ut.Translator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		t, err := apiutils.ConfigureValidator(v)
		if err != nil {
			r.logger.Fatalf("failed to configure validator %v", err)
		}
		trans = t
	}
	// skip /health API from logs, it is polled by the orchestrator
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/health"))
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		r.logger.Errorf("panic while serving %s: %v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errs.GenericErrorMessage)
	}))
	router.Use(middleware.HandleRequestID(r.logger))

	router.GET("/health", health.Handler(r.signalCtx))

	buildRoutes := router.Group("/builds")
	buildRoutes.POST("/start", builds.HandleStart(r.notifier, trans, r.logger))
	buildRoutes.POST("/complete", builds.HandleComplete(r.notifier, trans, r.logger))

	return router
}
