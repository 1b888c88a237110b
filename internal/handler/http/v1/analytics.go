package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

// @Summary List predictive models
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.PredictiveModel
// @Router /analytics/predictive-models [get]
func (h *Handler) listModels(c *gin.Context) {
	list, err := h.analytics.ListModels(c.Request.Context())
	if err != nil {
		h.respondError(c, h.log(c, "listModels"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create a predictive model
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param model body PredictiveModelRequest true "Predictive model"
// @Success 201 {object} models.PredictiveModel
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /analytics/predictive-models [post]
func (h *Handler) createModel(c *gin.Context) {
	var input PredictiveModelRequest
	log := h.log(c, "createModel")
	if !h.bindJSON(c, log, &input) {
		return
	}
	model := DTOToPredictiveModel(input, currentUserID(c))
	if err := h.analytics.CreateModel(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Get a predictive model
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Model ID"
// @Success 200 {object} models.PredictiveModel
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictive-models/{id} [get]
func (h *Handler) getModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	model, err := h.analytics.GetModel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getModel"), err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Update a predictive model
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Model ID"
// @Param model body PredictiveModelRequest true "Predictive model"
// @Success 200 {object} models.PredictiveModel
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictive-models/{id} [put]
func (h *Handler) updateModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input PredictiveModelRequest
	log := h.log(c, "updateModel")
	if !h.bindJSON(c, log, &input) {
		return
	}
	model := DTOToPredictiveModel(input, currentUserID(c))
	model.ID = id
	if err := h.analytics.UpdateModel(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Delete a predictive model
// @Tags Analytics
// @Security SessionAuth
// @Param id path int true "Model ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictive-models/{id} [delete]
func (h *Handler) deleteModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.analytics.DeleteModel(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteModel"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start training a model
// @Description Sets status to training and last_trained to now.
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Model ID"
// @Success 200 {object} models.PredictiveModel
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictive-models/{id}/train_model [post]
func (h *Handler) trainModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	model, err := h.analytics.TrainModel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "trainModel"), err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Deploy a trained model
// @Description Only a model in training status can be deployed.
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Model ID"
// @Success 200 {object} models.PredictiveModel
// @Failure 400 {object} ErrorResponse "Model must complete training before deployment"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictive-models/{id}/deploy_model [post]
func (h *Handler) deployModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	model, err := h.analytics.DeployModel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "deployModel"), err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// parseDateParam принимает дату в формате 2006-01-02 или RFC3339
func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, service.NewValidationError(name, "Enter a valid date.")
}

// @Summary List predictions
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param model_type query string false "Filter by model type"
// @Param start_date query string false "Predictions starting on or after this date"
// @Param end_date query string false "Predictions ending on or before this date"
// @Success 200 {array} PredictionResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /analytics/predictions [get]
func (h *Handler) listPredictions(c *gin.Context) {
	log := h.log(c, "listPredictions")
	filter := models.PredictionFilter{ModelType: c.Query("model_type")}
	var err error
	if filter.StartDate, err = parseDateParam(c, "start_date"); err != nil {
		h.respondError(c, log, err)
		return
	}
	if filter.EndDate, err = parseDateParam(c, "end_date"); err != nil {
		h.respondError(c, log, err)
		return
	}

	list, err := h.analytics.ListPredictions(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, ModelToPredictionResponse))
}

// @Summary Create a prediction
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param prediction body PredictionRequest true "Prediction"
// @Success 201 {object} PredictionResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /analytics/predictions [post]
func (h *Handler) createPrediction(c *gin.Context) {
	var input PredictionRequest
	log := h.log(c, "createPrediction")
	if !h.bindJSON(c, log, &input) {
		return
	}
	p, err := DTOToPredictionModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.analytics.CreatePrediction(c.Request.Context(), p); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPredictionResponse(p))
}

// @Summary Get a prediction
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Prediction ID"
// @Success 200 {object} PredictionResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictions/{id} [get]
func (h *Handler) getPrediction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.analytics.GetPrediction(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getPrediction"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToPredictionResponse(p))
}

// @Summary Update a prediction
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Prediction ID"
// @Param prediction body PredictionRequest true "Prediction"
// @Success 200 {object} PredictionResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictions/{id} [put]
func (h *Handler) updatePrediction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input PredictionRequest
	log := h.log(c, "updatePrediction")
	if !h.bindJSON(c, log, &input) {
		return
	}
	p, err := DTOToPredictionModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	p.ID = id
	if err := h.analytics.UpdatePrediction(c.Request.Context(), p); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPredictionResponse(p))
}

// @Summary Delete a prediction
// @Tags Analytics
// @Security SessionAuth
// @Param id path int true "Prediction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictions/{id} [delete]
func (h *Handler) deletePrediction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.analytics.DeletePrediction(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deletePrediction"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark a prediction verified
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Prediction ID"
// @Success 200 {object} PredictionResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/predictions/{id}/verify_prediction [post]
func (h *Handler) verifyPrediction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.analytics.VerifyPrediction(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "verifyPrediction"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToPredictionResponse(p))
}

// @Summary List analysis requests
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} AnalysisRequestResponse
// @Router /analytics/analysis-requests [get]
func (h *Handler) listAnalysisRequests(c *gin.Context) {
	list, err := h.analytics.ListRequests(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, h.log(c, "listAnalysisRequests"), err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, ModelToAnalysisRequestResponse))
}

// @Summary Create an analysis request
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body AnalysisRequestRequest true "Analysis request"
// @Success 201 {object} AnalysisRequestResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /analytics/analysis-requests [post]
func (h *Handler) createAnalysisRequest(c *gin.Context) {
	var input AnalysisRequestRequest
	log := h.log(c, "createAnalysisRequest")
	if !h.bindJSON(c, log, &input) {
		return
	}
	r, err := DTOToAnalysisRequestModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.analytics.CreateRequest(c.Request.Context(), r); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAnalysisRequestResponse(r))
}

// @Summary Get an analysis request
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Analysis request ID"
// @Success 200 {object} AnalysisRequestResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/analysis-requests/{id} [get]
func (h *Handler) getAnalysisRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.analytics.GetRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getAnalysisRequest"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToAnalysisRequestResponse(r))
}

// @Summary Update an analysis request
// @Tags Analytics
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Analysis request ID"
// @Param request body AnalysisRequestRequest true "Analysis request"
// @Success 200 {object} AnalysisRequestResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/analysis-requests/{id} [put]
func (h *Handler) updateAnalysisRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input AnalysisRequestRequest
	log := h.log(c, "updateAnalysisRequest")
	if !h.bindJSON(c, log, &input) {
		return
	}
	r, err := DTOToAnalysisRequestModel(input, currentUserID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	r.ID = id
	if err := h.analytics.UpdateRequest(c.Request.Context(), r); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAnalysisRequestResponse(r))
}

// @Summary Delete an analysis request
// @Tags Analytics
// @Security SessionAuth
// @Param id path int true "Analysis request ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/analysis-requests/{id} [delete]
func (h *Handler) deleteAnalysisRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.analytics.DeleteRequest(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteAnalysisRequest"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start processing an analysis request
// @Description Only a pending request can be processed.
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param id path int true "Analysis request ID"
// @Success 200 {object} AnalysisRequestResponse
// @Failure 400 {object} ErrorResponse "Request is not pending"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /analytics/analysis-requests/{id}/process_request [post]
func (h *Handler) processAnalysisRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.analytics.ProcessRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "processAnalysisRequest"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToAnalysisRequestResponse(r))
}
