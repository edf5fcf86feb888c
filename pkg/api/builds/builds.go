package builds

import (
	"net/http"

	"github.com/LambdaTest/statusbridge/pkg/api/middleware"
	apiutils "github.com/LambdaTest/statusbridge/pkg/api/utils"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/utils"
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// StartRequest is the payload of a build start hook.
type StartRequest struct {
	RemoteURL string `json:"remote_url" binding:"required"`
	CommitSHA string `json:"commit_sha"`
	TargetURL string `json:"target_url"`
}

// CompleteRequest is the payload of a build completion hook.
type CompleteRequest struct {
	StartRequest
	Result string `json:"result" binding:"required"`
}

type publishResponse struct {
	Published bool `json:"published"`
}

// HandleStart publishes the pending status for a started build.
func HandleStart(notifier core.Notifier, trans ut.Translator, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := middleware.Logger(c, logger)
		req := new(StartRequest)
		if err := c.ShouldBindJSON(req); err != nil {
			log.Debugf("invalid build start payload, error: %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, apiutils.BindingErr(err, trans, "build start payload"))
			return
		}
		build := &core.Build{
			RemoteURL: req.RemoteURL,
			CommitSHA: req.CommitSHA,
			BuildURL:  req.TargetURL,
		}
		published := notifier.OnBuildStart(c.Request.Context(), build)
		log.Infof("build start for %s@%s handled, published: %t", utils.RedactURL(build.RemoteURL), build.CommitSHA, published)
		c.JSON(http.StatusAccepted, publishResponse{Published: published})
	}
}

// HandleComplete publishes the terminal status for a finished build.
func HandleComplete(notifier core.Notifier, trans ut.Translator, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := middleware.Logger(c, logger)
		req := new(CompleteRequest)
		if err := c.ShouldBindJSON(req); err != nil {
			log.Debugf("invalid build complete payload, error: %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, apiutils.BindingErr(err, trans, "build complete payload"))
			return
		}
		result, err := core.ParseBuildResult(req.Result)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errs.InvalidInReqErr("result"))
			return
		}
		build := &core.Build{
			RemoteURL: req.RemoteURL,
			CommitSHA: req.CommitSHA,
			BuildURL:  req.TargetURL,
			Result:    result,
		}
		published := notifier.OnBuildComplete(c.Request.Context(), build)
		log.Infof("build %s for %s@%s handled, published: %t", result, utils.RedactURL(build.RemoteURL), build.CommitSHA, published)
		c.JSON(http.StatusAccepted, publishResponse{Published: published})
	}
}
