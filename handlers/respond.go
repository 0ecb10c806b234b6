package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"unzone-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError is one entry of a validation failure response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// pathID parses the named path parameter as a positive integer. On failure it
// writes the 400 response itself and reports false.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// bindingError writes the 400 response for a failed request binding. Field
// level validator failures are itemized; anything else (malformed JSON) gets
// the bare message.
func bindingError(c *gin.Context, what string, err error) {
	msg := "Invalid " + what + " data"

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{
				Field:   lowerFirst(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg, "errors": fields})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// storeError translates a repository error into the matching HTTP response.
// The notFoundMsg names the entity so 404 bodies read naturally.
func storeError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": "Resource already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
