package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/careerbridge/jobboard/internal/apperr"
	"github.com/careerbridge/jobboard/internal/middleware"
)

// respondError maps a service error onto the HTTP surface. Store and
// timeout causes are logged with the request id and never sent to the
// client; everything else carries its client-safe message.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Store(err)
	}

	if ae.Kind == apperr.KindStore || ae.Kind == apperr.KindTimeout {
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"kind":       ae.Kind.String(),
		}).WithError(ae).Error("request failed")
	}

	c.JSON(ae.Kind.HTTPStatus(), gin.H{"error": ae.Message})
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
