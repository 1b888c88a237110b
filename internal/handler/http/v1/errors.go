package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	codeBadRequest         = "BAD_REQUEST"
	codeValidation         = "VALIDATION_ERROR"
	codeNotFound           = "NOT_FOUND"
	codeConflict           = "CONFLICT"
	codeUnauthorized       = "UNAUTHORIZED"
	codeForbidden          = "FORBIDDEN"
	codeTooManyRequests    = "TOO_MANY_REQUESTS"
	codeInternalServer     = "INTERNAL_SERVER_ERROR"
	msgInternalServerError = "internal server error"
)

// ErrorResponse - тело ответа с ошибкой
// @Description Единый формат ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail - код, сообщение и ошибки по полям
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeError(c *gin.Context, status int, code, message string, details map[string]string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}})
}

// respondError переводит ошибку сервиса в HTTP ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *service.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &fieldErrs):
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = formatFieldError(fe)
		}
		writeError(c, http.StatusBadRequest, codeValidation, "Validation failed for one or more fields", details)
	case errors.As(err, &vErr):
		writeError(c, http.StatusBadRequest, codeValidation, "Validation failed for one or more fields", vErr.Fields)
	case errors.Is(err, models.ErrInvalidGeometry), errors.Is(err, models.ErrInvalidCoordinates):
		writeError(c, http.StatusBadRequest, codeValidation, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, codeBadRequest, "invalid input", nil)
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, codeNotFound, "Not found.", nil)
	case errors.Is(err, service.ErrConflict):
		writeError(c, http.StatusConflict, codeConflict, "A record with these values already exists.", nil)
	case errors.Is(err, service.ErrAlertLocked):
		writeError(c, http.StatusConflict, codeConflict, "Alert evaluation is already in progress.", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, codeUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(c, http.StatusUnauthorized, codeUnauthorized, "Authentication credentials were not provided.", nil)
	case errors.Is(err, service.ErrForbidden):
		writeError(c, http.StatusForbidden, codeForbidden, "You do not have permission to perform this action.", nil)
	default:
		log.WithError(err).Error("Request failed")
		writeError(c, http.StatusInternalServerError, codeInternalServer, msgInternalServerError, nil)
	}
}

// formatFieldError превращает ошибку validator в читаемое сообщение
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "gt":
		return "Ensure this value is greater than " + fe.Param() + "."
	case "gte":
		return "Ensure this value is greater than or equal to " + fe.Param() + "."
	case "lte":
		return "Ensure this value is less than or equal to " + fe.Param() + "."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "latitude":
		return "Latitude must be between -90 and 90."
	case "longitude":
		return "Longitude must be between -180 and 180."
	case "cron":
		return "Invalid cron expression."
	case "url":
		return "Enter a valid URL."
	default:
		return "Validation failed for tag: " + fe.Tag()
	}
}

// pathID разбирает числовой идентификатор из пути
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, codeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryID разбирает необязательный числовой параметр запроса
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, codeValidation, "invalid query parameter",
			map[string]string{name: "A valid integer is required."})
		return nil, false
	}
	return &id, true
}
