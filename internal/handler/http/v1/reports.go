package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

// @Summary List reports of the current user
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} ReportResponse
// @Router /reports/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	h.respondReports(c, "listReports", h.reports.ListReports)
}

// @Summary Pending and processing reports of the current user
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} ReportResponse
// @Router /reports/reports/pending_reports [get]
func (h *Handler) pendingReports(c *gin.Context) {
	h.respondReports(c, "pendingReports", h.reports.PendingReports)
}

func (h *Handler) respondReports(c *gin.Context, method string, list func(ctx context.Context, userID int64) ([]*models.Report, error)) {
	reports, err := list(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, method), err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(reports, ModelToReportResponse))
}

// @Summary Create a report request
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param report body ReportRequest true "Report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /reports/reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input ReportRequest
	log := h.log(c, "createReport")
	if !h.bindJSON(c, log, &input) {
		return
	}
	report, err := DTOToReportModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.reports.CreateReport(c.Request.Context(), report); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Get a report
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.GetReport(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "getReport"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Update a report
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Report ID"
// @Param report body ReportRequest true "Report"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/reports/{id} [put]
func (h *Handler) updateReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ReportRequest
	log := h.log(c, "updateReport")
	if !h.bindJSON(c, log, &input) {
		return
	}
	userID := currentUserID(c)
	report, err := DTOToReportModel(input, userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	report.ID = id
	if err := h.reports.UpdateReport(c.Request.Context(), userID, report); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Delete a report
// @Tags Reports
// @Security SessionAuth
// @Param id path int true "Report ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.DeleteReport(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, h.log(c, "deleteReport"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Queue a report for regeneration
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/reports/{id}/regenerate [post]
func (h *Handler) regenerateReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.RegenerateReport(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "regenerateReport"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Templates visible to the current user
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.ReportTemplate
// @Router /reports/templates [get]
func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.reports.ListTemplates(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "listTemplates"), err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// @Summary Public templates
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.ReportTemplate
// @Router /reports/templates/public_templates [get]
func (h *Handler) publicTemplates(c *gin.Context) {
	templates, err := h.reports.PublicTemplates(c.Request.Context())
	if err != nil {
		h.respondError(c, h.log(c, "publicTemplates"), err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// @Summary Create a template
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param template body TemplateRequest true "Template"
// @Success 201 {object} models.ReportTemplate
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /reports/templates [post]
func (h *Handler) createTemplate(c *gin.Context) {
	var input TemplateRequest
	log := h.log(c, "createTemplate")
	if !h.bindJSON(c, log, &input) {
		return
	}
	t := DTOToTemplateModel(input, currentUserID(c))
	if err := h.reports.CreateTemplate(c.Request.Context(), t); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary Get a template
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Template ID"
// @Success 200 {object} models.ReportTemplate
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/templates/{id} [get]
func (h *Handler) getTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.reports.GetTemplate(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "getTemplate"), err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Update a template
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Template ID"
// @Param template body TemplateRequest true "Template"
// @Success 200 {object} models.ReportTemplate
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Template belongs to another user"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/templates/{id} [put]
func (h *Handler) updateTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input TemplateRequest
	log := h.log(c, "updateTemplate")
	if !h.bindJSON(c, log, &input) {
		return
	}
	userID := currentUserID(c)
	t := DTOToTemplateModel(input, userID)
	t.ID = id
	if err := h.reports.UpdateTemplate(c.Request.Context(), userID, t); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Delete a template
// @Tags Reports
// @Security SessionAuth
// @Param id path int true "Template ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Template belongs to another user"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/templates/{id} [delete]
func (h *Handler) deleteTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.DeleteTemplate(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, h.log(c, "deleteTemplate"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Scheduled reports of the current user
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.ScheduledReport
// @Router /reports/scheduled [get]
func (h *Handler) listScheduled(c *gin.Context) {
	list, err := h.reports.ListScheduled(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "listScheduled"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Active scheduled reports of the current user
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.ScheduledReport
// @Router /reports/scheduled/upcoming_reports [get]
func (h *Handler) upcomingScheduled(c *gin.Context) {
	list, err := h.reports.UpcomingScheduled(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "upcomingScheduled"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create a scheduled report
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param scheduled body ScheduledReportRequest true "Scheduled report"
// @Success 201 {object} models.ScheduledReport
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /reports/scheduled [post]
func (h *Handler) createScheduled(c *gin.Context) {
	var input ScheduledReportRequest
	log := h.log(c, "createScheduled")
	if !h.bindJSON(c, log, &input) {
		return
	}
	sr := DTOToScheduledModel(input, currentUserID(c))
	if err := h.reports.CreateScheduled(c.Request.Context(), sr); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, sr)
}

// @Summary Get a scheduled report
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Scheduled report ID"
// @Success 200 {object} models.ScheduledReport
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/scheduled/{id} [get]
func (h *Handler) getScheduled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sr, err := h.reports.GetScheduled(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "getScheduled"), err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

// @Summary Update a scheduled report
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Scheduled report ID"
// @Param scheduled body ScheduledReportRequest true "Scheduled report"
// @Success 200 {object} models.ScheduledReport
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/scheduled/{id} [put]
func (h *Handler) updateScheduled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ScheduledReportRequest
	log := h.log(c, "updateScheduled")
	if !h.bindJSON(c, log, &input) {
		return
	}
	userID := currentUserID(c)
	sr := DTOToScheduledModel(input, userID)
	sr.ID = id
	if err := h.reports.UpdateScheduled(c.Request.Context(), userID, sr); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

// @Summary Delete a scheduled report
// @Tags Reports
// @Security SessionAuth
// @Param id path int true "Scheduled report ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/scheduled/{id} [delete]
func (h *Handler) deleteScheduled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.DeleteScheduled(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, h.log(c, "deleteScheduled"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle a scheduled report on or off
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Scheduled report ID"
// @Success 200 {object} models.ScheduledReport
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /reports/scheduled/{id}/toggle_active [post]
func (h *Handler) toggleScheduled(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sr, err := h.reports.ToggleScheduled(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.respondError(c, h.log(c, "toggleScheduled"), err)
		return
	}
	c.JSON(http.StatusOK, sr)
}
