package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	CodeValidation      = "validation_error"
	CodeConflict        = "conflict"
	CodeInvalidArgument = "invalid_argument"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeEventLocked     = "event_locked"
	CodeNotFound        = "not_found"
	CodeTooLarge        = "payload_too_large"
	CodeInternal        = "internal_error"
)

func init() {
	// report binding errors with the json field names clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

func writeError(c *gin.Context, status int, code, message string, details []apperrors.FieldError) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": ErrorBody{Code: code, Message: message, Details: details},
	})
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		writeBindError(c, err)
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		writeBindError(c, err)
		return err
	}
	return nil
}

func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeError(c, http.StatusBadRequest, CodeValidation, "Invalid request data", fieldErrors(verrs))
		return
	}
	writeError(c, http.StatusBadRequest, CodeInvalidArgument, "Invalid request format", nil)
}

func fieldErrors(verrs validator.ValidationErrors) []apperrors.FieldError {
	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		// drop the request struct name
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, apperrors.FieldError{Field: field, Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}

// handleError maps service errors to the JSON error envelope. Unexpected
// errors are logged and answered with a generic 500.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn("Validation failed")
		writeError(c, http.StatusBadRequest, CodeValidation, "Invalid event data", verr.Fields)
	case errors.Is(err, apperrors.ErrSlugConflict):
		log.Warn("Slug conflict")
		writeError(c, http.StatusBadRequest, CodeConflict, "An event with this slug already exists", nil)
	case errors.Is(err, apperrors.ErrInvalidStepIndex):
		log.Warn("Invalid step index")
		writeError(c, http.StatusBadRequest, CodeInvalidArgument, "Invalid step index", nil)
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		writeError(c, http.StatusBadRequest, CodeInvalidArgument, "Invalid input", nil)
	case errors.Is(err, apperrors.ErrUnsupportedMedia):
		log.Warn("Unsupported media")
		writeError(c, http.StatusBadRequest, CodeInvalidArgument, "Only images are allowed", nil)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		writeError(c, http.StatusUnauthorized, CodeUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, apperrors.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, CodeUnauthorized, "Access denied", nil)
	case errors.Is(err, apperrors.ErrForbidden):
		writeError(c, http.StatusForbidden, CodeForbidden, "Admin access required", nil)
	case errors.Is(err, apperrors.ErrEventLocked):
		writeError(c, http.StatusForbidden, CodeEventLocked, "Event is locked", nil)
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		writeError(c, http.StatusNotFound, CodeNotFound, "Event not found", nil)
	case errors.Is(err, apperrors.ErrImageNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, "Image not found", nil)
	default:
		log.Error("Unexpected error")
		writeError(c, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
	}
}
