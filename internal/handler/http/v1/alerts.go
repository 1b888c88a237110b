package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

// @Summary List alerts of the current user
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /alerts/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	h.respondAlerts(c, "listAlerts", false)
}

// @Summary Active alerts of the current user
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /alerts/alerts/active_alerts [get]
func (h *Handler) activeAlerts(c *gin.Context) {
	h.respondAlerts(c, "activeAlerts", true)
}

func (h *Handler) respondAlerts(c *gin.Context, method string, activeOnly bool) {
	alerts, err := h.alerts.ListAlerts(c.Request.Context(), currentUserID(c), activeOnly)
	if err != nil {
		h.respondError(c, h.log(c, method), err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(alerts, ModelToAlertResponse))
}

// @Summary Create an alert
// @Description Subscribe to crimes of the given types within a radius of a point.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param alert body AlertRequest true "Alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /alerts/alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input AlertRequest
	log := h.log(c, "createAlert")
	if !h.bindJSON(c, log, &input) {
		return
	}
	alert, err := DTOToAlertModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.alerts.CreateAlert(c.Request.Context(), alert); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get an alert
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	alert, err := h.alerts.GetAlert(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAlert"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Update an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Alert ID"
// @Param alert body AlertRequest true "Alert"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alerts/{id} [put]
func (h *Handler) updateAlert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input AlertRequest
	log := h.log(c, "updateAlert").WithField("alert_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	userID := currentUserID(c)
	alert, err := DTOToAlertModel(input, userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	alert.ID = id
	if err := h.alerts.UpdateAlert(c.Request.Context(), userID, alert); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Delete an alert
// @Tags Alerts
// @Security SessionAuth
// @Param id path int true "Alert ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.alerts.DeleteAlert(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, h.log(c, "deleteAlert"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Recent crimes matching an alert
// @Description Active crimes of the alert's types within its radius, nearest first.
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} models.MatchResult
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alerts/{id}/recent_matches [get]
func (h *Handler) recentMatches(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.alerts.RecentMatches(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "recentMatches").WithField("alert_id", id), err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Evaluate an alert now
// @Description Run the notification trigger for one alert. Created is false when nothing new matched.
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} EvaluateResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Evaluation already in progress"
// @Router /alerts/alerts/{id}/evaluate [post]
func (h *Handler) evaluateAlert(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.alerts.EvaluateForUser(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "evaluateAlert").WithField("alert_id", id), err)
		return
	}
	c.JSON(http.StatusOK, EvaluateResponse{Created: n != nil, Notification: n})
}

// @Summary Notifications of the current user
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.AlertNotification
// @Router /alerts/alert-notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	notifications, err := h.alerts.ListNotifications(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "listNotifications"), err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// @Summary Get a notification of the current user
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} models.AlertNotification
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alert-notifications/{id} [get]
func (h *Handler) getNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.alerts.GetNotification(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "getNotification"), err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Update notification status
// @Tags Alerts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Notification ID"
// @Param status body NotificationStatusRequest true "Status"
// @Success 200 {object} models.AlertNotification
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /alerts/alert-notifications/{id} [patch]
func (h *Handler) updateNotificationStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input NotificationStatusRequest
	log := h.log(c, "updateNotificationStatus")
	if !h.bindJSON(c, log, &input) {
		return
	}
	n, err := h.alerts.UpdateNotificationStatus(c.Request.Context(), currentUserID(c), id,
		models.NotificationStatus(input.Status), input.StatusMessage)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
