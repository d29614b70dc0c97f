package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

// pathID parses the named path parameter as an id; responds 400 itself when
// the segment is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// errStatus maps service sentinel errors onto HTTP status codes; anything
// unrecognized is a store error.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
