package v1

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Accounts  service.AccountService
	Agencies  service.AgencyService
	Crimes    service.CrimeService
	Alerts    service.AlertService
	ETL       service.ETLService
	Reports   service.ReportService
	Analytics service.AnalyticsService
}

type Handler struct {
	accounts     service.AccountService
	agencies     service.AgencyService
	crimes       service.CrimeService
	alerts       service.AlertService
	etl          service.ETLService
	reports      service.ReportService
	analytics    service.AnalyticsService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
	loginLimiter *ipRateLimiter
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		accounts:     services.Accounts,
		agencies:     services.Agencies,
		crimes:       services.Crimes,
		alerts:       services.Alerts,
		etl:          services.ETL,
		reports:      services.Reports,
		analytics:    services.Analytics,
		logger:       logger,
		validate:     newValidator(),
		cfg:          cfg,
		loginLimiter: newIPRateLimiter(cfg.LoginRateLimitRPS, cfg.LoginRateLimitBurst),
	}
}

// newValidator настраивает validator: имена полей берутся из json-тегов, добавлен тег cron
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		return service.ValidateCron(fl.Field().String()) == nil
	})
	return v
}

// bindJSON разбирает тело запроса и проверяет его. При ошибке ответ уже записан.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		writeError(c, http.StatusBadRequest, codeBadRequest, "invalid request body", nil)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		h.respondError(c, log, err)
		return false
	}
	return true
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	entry := h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
	if s := sessionFrom(c); s != nil {
		entry = entry.WithField("user_id", s.UserID)
	}
	return entry
}
