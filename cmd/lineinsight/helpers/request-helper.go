package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lineinsight/lineinsight/internal"
	"github.com/lineinsight/lineinsight/pkg/datamodel"
)

func HandleInternalServerError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleInternalServerError: c is nil")
	}
	if err == nil {
		err = errors.New("unknown error")
	}

	erx := internal.SanitizeString(err.Error())
	zap.S().Errorw(
		"Internal server error",
		"error", erx,
	)

	c.JSON(
		http.StatusInternalServerError,
		gin.H{
			"error":   erx,
			"status":  http.StatusInternalServerError,
			"message": "The server had an internal error.",
		})
}

func HandleInvalidInputError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleInvalidInputError: c is nil")
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	erx := internal.SanitizeString(err.Error())
	zap.S().Errorw(
		"Invalid input error",
		"error", erx,
	)

	c.JSON(
		http.StatusBadRequest,
		gin.H{
			"error":   erx,
			"status":  http.StatusBadRequest,
			"message": "You have provided a wrong input. Please check your parameters.",
		})
}

func HandleNotFoundError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleNotFoundError: c is nil")
	}
	if err == nil {
		err = datamodel.ErrNotFound
	}

	c.JSON(
		http.StatusNotFound,
		gin.H{
			"error":   internal.SanitizeString(err.Error()),
			"status":  http.StatusNotFound,
			"message": "The requested resource was not found.",
			"route":   c.FullPath(),
		})
}

func HandleConflictError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleConflictError: c is nil")
	}

	c.JSON(
		http.StatusConflict,
		gin.H{
			"error":   internal.SanitizeString(err.Error()),
			"status":  http.StatusConflict,
			"message": "The operation was rejected in its current state.",
		})
}

// HandleModelError maps the computation core's error taxonomy onto HTTP
// statuses. Unknown errors fall through as internal server errors.
func HandleModelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, datamodel.ErrNotFound):
		HandleNotFoundError(c, err)
	case errors.Is(err, datamodel.ErrInvalidParent),
		errors.Is(err, datamodel.ErrInvalidMetric),
		errors.Is(err, datamodel.ErrIndeterminate):
		HandleInvalidInputError(c, err)
	case errors.Is(err, datamodel.ErrAlreadyAcknowledged),
		errors.Is(err, datamodel.ErrConcurrentModification):
		HandleConflictError(c, err)
	default:
		HandleInternalServerError(c, err)
	}
}

// CheckIfUserIsAllowed checks if the authenticated user may access data for
// the given facility.
func CheckIfUserIsAllowed(c *gin.Context, facility string) error {
	user := c.MustGet(gin.AuthUserKey)
	if user != facility {
		c.AbortWithStatus(http.StatusUnauthorized)
		zap.S().Infof("User %s unauthorized to access %s", user, internal.SanitizeString(facility))
		return errors.New("unauthorized")
	}
	return nil
}
