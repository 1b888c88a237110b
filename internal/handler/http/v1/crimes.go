package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

// @Summary List crime categories
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param search query string false "Search by name"
// @Success 200 {array} models.CrimeCategory
// @Router /crimes/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.crimes.ListCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, h.log(c, "listCategories"), err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Create a crime category
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} models.CrimeCategory
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Router /crimes/categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input CategoryRequest
	log := h.log(c, "createCategory")
	if !h.bindJSON(c, log, &input) {
		return
	}
	category := DTOToCategoryModel(input)
	if err := h.crimes.CreateCategory(c.Request.Context(), category); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary Get a crime category
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param id path int true "Category ID"
// @Success 200 {object} models.CrimeCategory
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.crimes.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getCategory"), err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary Update a crime category
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category"
// @Success 200 {object} models.CrimeCategory
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/categories/{id} [put]
func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input CategoryRequest
	log := h.log(c, "updateCategory")
	if !h.bindJSON(c, log, &input) {
		return
	}
	category := DTOToCategoryModel(input)
	category.ID = id
	if err := h.crimes.UpdateCategory(c.Request.Context(), category); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary Delete a crime category
// @Tags Crimes
// @Security SessionAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/categories/{id} [delete]
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.crimes.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteCategory"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List crime types
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param category query int false "Filter by category"
// @Param severity_level query int false "Filter by severity"
// @Param search query string false "Search by name"
// @Success 200 {array} models.CrimeType
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /crimes/types [get]
func (h *Handler) listTypes(c *gin.Context) {
	categoryID, ok := queryID(c, "category")
	if !ok {
		return
	}
	filter := models.CrimeTypeFilter{CategoryID: categoryID, Search: c.Query("search")}
	if raw := c.Query("severity_level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, h.log(c, "listTypes"), service.NewValidationError("severity_level", "A valid integer is required."))
			return
		}
		filter.SeverityLevel = &level
	}

	types, err := h.crimes.ListTypes(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, h.log(c, "listTypes"), err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Create a crime type
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param type body CrimeTypeRequest true "Crime type"
// @Success 201 {object} models.CrimeType
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Name already exists in the category"
// @Router /crimes/types [post]
func (h *Handler) createType(c *gin.Context) {
	var input CrimeTypeRequest
	log := h.log(c, "createType")
	if !h.bindJSON(c, log, &input) {
		return
	}
	ct := DTOToCrimeTypeModel(input)
	if err := h.crimes.CreateType(c.Request.Context(), ct); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// @Summary Get a crime type
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param id path int true "Crime type ID"
// @Success 200 {object} models.CrimeType
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/types/{id} [get]
func (h *Handler) getType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ct, err := h.crimes.GetType(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getType"), err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// @Summary Update a crime type
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Crime type ID"
// @Param type body CrimeTypeRequest true "Crime type"
// @Success 200 {object} models.CrimeType
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/types/{id} [put]
func (h *Handler) updateType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input CrimeTypeRequest
	log := h.log(c, "updateType")
	if !h.bindJSON(c, log, &input) {
		return
	}
	ct := DTOToCrimeTypeModel(input)
	ct.ID = id
	if err := h.crimes.UpdateType(c.Request.Context(), ct); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// @Summary Delete a crime type
// @Tags Crimes
// @Security SessionAuth
// @Param id path int true "Crime type ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/types/{id} [delete]
func (h *Handler) deleteType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.crimes.DeleteType(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteType"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// crimeFilterFromQuery разбирает фильтры, сортировку и пагинацию списка инцидентов
func crimeFilterFromQuery(c *gin.Context) (models.CrimeFilter, error) {
	filter := models.CrimeFilter{
		City:               c.Query("city"),
		State:              c.Query("state"),
		VerificationStatus: c.Query("verification_status"),
		Search:             c.Query("search"),
	}

	for name, dst := range map[string]**int64{"crime_type": &filter.CrimeTypeID, "agency": &filter.AgencyID} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, service.NewValidationError(name, "A valid integer is required.")
		}
		*dst = &id
	}

	if ordering := c.Query("ordering"); ordering != "" {
		filter.Descending = strings.HasPrefix(ordering, "-")
		filter.OrderBy = strings.TrimPrefix(ordering, "-")
	}

	var err error
	if raw := c.Query("page"); raw != "" {
		if filter.Page, err = strconv.Atoi(raw); err != nil {
			return filter, service.NewValidationError("page", "A valid integer is required.")
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if filter.PageSize, err = strconv.Atoi(raw); err != nil {
			return filter, service.NewValidationError("page_size", "A valid integer is required.")
		}
	}
	filter.NormalizePage()
	return filter, nil
}

// @Summary List crime incidents
// @Description Paginated list with filters, accent-insensitive search and ordering.
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param crime_type query int false "Filter by crime type"
// @Param agency query int false "Filter by agency"
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state"
// @Param verification_status query string false "Filter by verification status"
// @Param search query string false "Search in description, block address and zip code"
// @Param ordering query string false "occurred_at, reported_at or created_at, prefix - for descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} CrimeListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /crimes/incidents [get]
func (h *Handler) listCrimes(c *gin.Context) {
	log := h.log(c, "listCrimes")
	filter, err := crimeFilterFromQuery(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	crimes, total, err := h.crimes.ListCrimes(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CrimeListResponse{
		Count:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Results:  mapSlice(crimes, ModelToCrimeResponse),
	})
}

// @Summary Crime incidents as GeoJSON
// @Description Same filters as the list endpoint, returned as a FeatureCollection of points.
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param crime_type query int false "Filter by crime type"
// @Param agency query int false "Filter by agency"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /crimes/incidents/spatial [get]
func (h *Handler) spatialCrimes(c *gin.Context) {
	log := h.log(c, "spatialCrimes")
	filter, err := crimeFilterFromQuery(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	crimes, _, err := h.crimes.ListCrimes(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFeatureCollection(crimes))
}

// @Summary Create a crime incident
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param crime body CrimeRequest true "Crime incident"
// @Success 201 {object} CrimeResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Incident ID already exists"
// @Router /crimes/incidents [post]
func (h *Handler) createCrime(c *gin.Context) {
	var input CrimeRequest
	log := h.log(c, "createCrime")
	if !h.bindJSON(c, log, &input) {
		return
	}
	crime, err := DTOToCrimeModel(input, time.Now().UTC())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.crimes.CreateCrime(c.Request.Context(), crime); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCrimeResponse(crime))
}

// @Summary Get a crime incident
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param id path int true "Crime ID"
// @Success 200 {object} CrimeResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/incidents/{id} [get]
func (h *Handler) getCrime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	crime, err := h.crimes.GetCrime(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getCrime"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToCrimeResponse(crime))
}

// @Summary Update a crime incident
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Crime ID"
// @Param crime body CrimeRequest true "Crime incident"
// @Success 200 {object} CrimeResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/incidents/{id} [put]
func (h *Handler) updateCrime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input CrimeRequest
	log := h.log(c, "updateCrime").WithField("crime_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	existing, err := h.crimes.GetCrime(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	crime, err := DTOToCrimeModel(input, existing.ReportedAt)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	crime.ID = id
	if err := h.crimes.UpdateCrime(c.Request.Context(), crime); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCrimeResponse(crime))
}

// @Summary Deactivate a crime incident
// @Description Crimes are never physically deleted: the incident is marked inactive.
// @Tags Crimes
// @Security SessionAuth
// @Param id path int true "Crime ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/incidents/{id} [delete]
func (h *Handler) deleteCrime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.crimes.DeleteCrime(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteCrime"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List crime attributes
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param crime query int false "Filter by crime"
// @Success 200 {array} models.CrimeAttribute
// @Router /crimes/attributes [get]
func (h *Handler) listAttributes(c *gin.Context) {
	crimeID, ok := queryID(c, "crime")
	if !ok {
		return
	}
	attrs, err := h.crimes.ListAttributes(c.Request.Context(), crimeID)
	if err != nil {
		h.respondError(c, h.log(c, "listAttributes"), err)
		return
	}
	c.JSON(http.StatusOK, attrs)
}

// @Summary Create a crime attribute
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param attribute body AttributeRequest true "Attribute"
// @Success 201 {object} models.CrimeAttribute
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Attribute already exists for the crime"
// @Router /crimes/attributes [post]
func (h *Handler) createAttribute(c *gin.Context) {
	var input AttributeRequest
	log := h.log(c, "createAttribute")
	if !h.bindJSON(c, log, &input) {
		return
	}
	attr := DTOToAttributeModel(input)
	if err := h.crimes.CreateAttribute(c.Request.Context(), attr); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, attr)
}

// @Summary Get a crime attribute
// @Tags Crimes
// @Produce json
// @Security SessionAuth
// @Param id path int true "Attribute ID"
// @Success 200 {object} models.CrimeAttribute
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/attributes/{id} [get]
func (h *Handler) getAttribute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	attr, err := h.crimes.GetAttribute(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAttribute"), err)
		return
	}
	c.JSON(http.StatusOK, attr)
}

// @Summary Update a crime attribute
// @Tags Crimes
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Attribute ID"
// @Param attribute body AttributeRequest true "Attribute"
// @Success 200 {object} models.CrimeAttribute
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Attribute already exists for the crime"
// @Router /crimes/attributes/{id} [put]
func (h *Handler) updateAttribute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input AttributeRequest
	log := h.log(c, "updateAttribute")
	if !h.bindJSON(c, log, &input) {
		return
	}
	attr := DTOToAttributeModel(input)
	attr.ID = id
	if err := h.crimes.UpdateAttribute(c.Request.Context(), attr); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, attr)
}

// @Summary Delete a crime attribute
// @Tags Crimes
// @Security SessionAuth
// @Param id path int true "Attribute ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /crimes/attributes/{id} [delete]
func (h *Handler) deleteAttribute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.crimes.DeleteAttribute(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteAttribute"), err)
		return
	}
	c.Status(http.StatusNoContent)
}
