package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type fieldError struct {
	Msg string `json:"msg"`
}

// validationFailed writes the express-validator style body the client
// already understands: {"errors": [{"msg": ...}, ...]}.
func validationFailed(c *gin.Context, msgs ...string) {
	errs := make([]fieldError, 0, len(msgs))
	for _, m := range msgs {
		errs = append(errs, fieldError{Msg: m})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// idParam parses the numeric :id path segment. A malformed id reads as a
// missing record, same as a well-formed id that matches nothing.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// serviceError maps the sentinel service errors onto the route's status
// codes; anything unexpected is logged and becomes a plain 500.
func serviceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": notFoundMsg})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
	default:
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
