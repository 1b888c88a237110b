package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

// @Summary List agencies
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param search query string false "Search by name, code or city"
// @Success 200 {array} AgencyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /agencies/agencies [get]
func (h *Handler) listAgencies(c *gin.Context) {
	agencies, err := h.agencies.ListAgencies(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, h.log(c, "listAgencies"), err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(agencies, ModelToAgencyResponse))
}

// @Summary Create an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param agency body AgencyRequest true "Agency"
// @Success 201 {object} AgencyResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Agency code already exists"
// @Router /agencies/agencies [post]
func (h *Handler) createAgency(c *gin.Context) {
	var input AgencyRequest
	log := h.log(c, "createAgency")
	if !h.bindJSON(c, log, &input) {
		return
	}
	agency, err := DTOToAgencyModel(input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.agencies.CreateAgency(c.Request.Context(), agency); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAgencyResponse(agency))
}

// @Summary Get agency by ID
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Success 200 {object} AgencyResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agencies/{id} [get]
func (h *Handler) getAgency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	agency, err := h.agencies.GetAgency(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAgency"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToAgencyResponse(agency))
}

// @Summary Update an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Param agency body AgencyRequest true "Agency"
// @Success 200 {object} AgencyResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agencies/{id} [put]
func (h *Handler) updateAgency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input AgencyRequest
	log := h.log(c, "updateAgency").WithField("agency_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	agency, err := DTOToAgencyModel(input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	agency.ID = id
	if err := h.agencies.UpdateAgency(c.Request.Context(), agency); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAgencyResponse(agency))
}

// @Summary Delete an agency
// @Tags Agencies
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agencies/{id} [delete]
func (h *Handler) deleteAgency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.agencies.DeleteAgency(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteAgency"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get API configuration of an agency
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Success 200 {object} models.AgencyAPIConfig
// @Failure 404 {object} ErrorResponse "No API configuration found for this agency"
// @Router /agencies/agencies/{id}/api_config [get]
func (h *Handler) getAgencyAPIConfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cfg, err := h.agencies.GetAPIConfig(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(c, http.StatusNotFound, codeNotFound, "No API configuration found for this agency", nil)
			return
		}
		h.respondError(c, h.log(c, "getAgencyAPIConfig"), err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Create or replace API configuration of an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Param config body APIConfigRequest true "API configuration"
// @Success 200 {object} models.AgencyAPIConfig
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Router /agencies/agencies/{id}/api_config [put]
func (h *Handler) putAgencyAPIConfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input APIConfigRequest
	log := h.log(c, "putAgencyAPIConfig").WithField("agency_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	if _, err := h.agencies.GetAgency(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}

	cfg := DTOToAPIConfigModel(input)
	cfg.AgencyID = id
	if err := h.agencies.SaveAPIConfig(c.Request.Context(), cfg); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Users authorized for an agency
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Success 200 {array} models.AgencyUser
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agencies/{id}/authorized_users [get]
func (h *Handler) agencyAuthorizedUsers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	users, err := h.agencies.AuthorizedUsers(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "agencyAuthorizedUsers"), err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary List API configurations
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.AgencyAPIConfig
// @Router /agencies/api-configs [get]
func (h *Handler) listAPIConfigs(c *gin.Context) {
	configs, err := h.agencies.ListAPIConfigs(c.Request.Context())
	if err != nil {
		h.respondError(c, h.log(c, "listAPIConfigs"), err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// @Summary Create API configuration
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param config body APIConfigRequest true "API configuration"
// @Success 201 {object} models.AgencyAPIConfig
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /agencies/api-configs [post]
func (h *Handler) createAPIConfig(c *gin.Context) {
	var input APIConfigRequest
	log := h.log(c, "createAPIConfig")
	if !h.bindJSON(c, log, &input) {
		return
	}
	if input.AgencyID <= 0 {
		h.respondError(c, log, service.NewValidationError("agency_id", "This field is required."))
		return
	}
	cfg := DTOToAPIConfigModel(input)
	if err := h.agencies.SaveAPIConfig(c.Request.Context(), cfg); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// @Summary Get API configuration by ID
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Configuration ID"
// @Success 200 {object} models.AgencyAPIConfig
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/api-configs/{id} [get]
func (h *Handler) getAPIConfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cfg, err := h.agencies.GetAPIConfigByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAPIConfig"), err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Update API configuration
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Configuration ID"
// @Param config body APIConfigRequest true "API configuration"
// @Success 200 {object} models.AgencyAPIConfig
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/api-configs/{id} [put]
func (h *Handler) updateAPIConfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input APIConfigRequest
	log := h.log(c, "updateAPIConfig")
	if !h.bindJSON(c, log, &input) {
		return
	}
	existing, err := h.agencies.GetAPIConfigByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	cfg := DTOToAPIConfigModel(input)
	cfg.ID = existing.ID
	cfg.AgencyID = existing.AgencyID
	cfg.LastSync = existing.LastSync
	if err := h.agencies.SaveAPIConfig(c.Request.Context(), cfg); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Delete API configuration
// @Tags Agencies
// @Security SessionAuth
// @Param id path int true "Configuration ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/api-configs/{id} [delete]
func (h *Handler) deleteAPIConfig(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.agencies.DeleteAPIConfig(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteAPIConfig"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List agency users
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param agency_id query int false "Filter by agency"
// @Param user_id query int false "Filter by user"
// @Success 200 {array} models.AgencyUser
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /agencies/agency-users [get]
func (h *Handler) listAgencyUsers(c *gin.Context) {
	agencyID, ok := queryID(c, "agency_id")
	if !ok {
		return
	}
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	users, err := h.agencies.ListAgencyUsers(c.Request.Context(), models.AgencyUserFilter{AgencyID: agencyID, UserID: userID})
	if err != nil {
		h.respondError(c, h.log(c, "listAgencyUsers"), err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Link a user to an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param link body AgencyUserRequest true "Agency user"
// @Success 201 {object} models.AgencyUser
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Link already exists"
// @Router /agencies/agency-users [post]
func (h *Handler) createAgencyUser(c *gin.Context) {
	var input AgencyUserRequest
	log := h.log(c, "createAgencyUser")
	if !h.bindJSON(c, log, &input) {
		return
	}
	au := DTOToAgencyUserModel(input)
	if err := h.agencies.CreateAgencyUser(c.Request.Context(), au); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, au)
}

// @Summary Get agency user
// @Tags Agencies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency user ID"
// @Success 200 {object} models.AgencyUser
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agency-users/{id} [get]
func (h *Handler) getAgencyUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	au, err := h.agencies.GetAgencyUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAgencyUser"), err)
		return
	}
	c.JSON(http.StatusOK, au)
}

// @Summary Update agency user
// @Tags Agencies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency user ID"
// @Param link body AgencyUserRequest true "Agency user"
// @Success 200 {object} models.AgencyUser
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agency-users/{id} [put]
func (h *Handler) updateAgencyUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input AgencyUserRequest
	log := h.log(c, "updateAgencyUser")
	if !h.bindJSON(c, log, &input) {
		return
	}
	au := DTOToAgencyUserModel(input)
	au.ID = id
	if err := h.agencies.UpdateAgencyUser(c.Request.Context(), au); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, au)
}

// @Summary Delete agency user
// @Tags Agencies
// @Security SessionAuth
// @Param id path int true "Agency user ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /agencies/agency-users/{id} [delete]
func (h *Handler) deleteAgencyUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.agencies.DeleteAgencyUser(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteAgencyUser"), err)
		return
	}
	c.Status(http.StatusNoContent)
}
