package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Shivam-2025/KhelSaksham/services"
)

// respondErr maps a service error kind to an HTTP status and writes the
// standard {"error": ...} body. Upstream failures get logged; the rest
// are the caller's fault and stay quiet.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation, services.KindConflict:
		status = http.StatusBadRequest
	case services.KindUnauthorized:
		status = http.StatusUnauthorized
	case services.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Errorf("request failed: %v", err)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
