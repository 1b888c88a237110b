package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List data sources
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param agency query int false "Filter by agency"
// @Success 200 {array} models.DataSource
// @Router /etl/data-sources [get]
func (h *Handler) listDataSources(c *gin.Context) {
	agencyID, ok := queryID(c, "agency")
	if !ok {
		return
	}
	list, err := h.etl.ListDataSources(c.Request.Context(), agencyID)
	if err != nil {
		h.respondError(c, h.log(c, "listDataSources"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create a data source
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param source body DataSourceRequest true "Data source"
// @Success 201 {object} models.DataSource
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /etl/data-sources [post]
func (h *Handler) createDataSource(c *gin.Context) {
	var input DataSourceRequest
	log := h.log(c, "createDataSource")
	if !h.bindJSON(c, log, &input) {
		return
	}
	ds := DTOToDataSourceModel(input)
	if err := h.etl.CreateDataSource(c.Request.Context(), ds); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ds)
}

// @Summary Get a data source
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Data source ID"
// @Success 200 {object} models.DataSource
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/data-sources/{id} [get]
func (h *Handler) getDataSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ds, err := h.etl.GetDataSource(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getDataSource"), err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// @Summary Update a data source
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Data source ID"
// @Param source body DataSourceRequest true "Data source"
// @Success 200 {object} models.DataSource
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/data-sources/{id} [put]
func (h *Handler) updateDataSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input DataSourceRequest
	log := h.log(c, "updateDataSource")
	if !h.bindJSON(c, log, &input) {
		return
	}
	ds := DTOToDataSourceModel(input)
	ds.ID = id
	if err := h.etl.UpdateDataSource(c.Request.Context(), ds); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// @Summary Delete a data source
// @Tags ETL
// @Security SessionAuth
// @Param id path int true "Data source ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/data-sources/{id} [delete]
func (h *Handler) deleteDataSource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.etl.DeleteDataSource(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteDataSource"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Trigger a manual sync
// @Description Registers a running job for the data source. The import itself is run by an external worker.
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Data source ID"
// @Success 201 {object} models.ETLJob
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/data-sources/{id}/trigger_sync [post]
func (h *Handler) triggerSync(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.etl.TriggerSync(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "triggerSync").WithField("data_source_id", id), err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// @Summary List ETL jobs
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param data_source query int false "Filter by data source"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.ETLJob
// @Router /etl/etl-jobs [get]
func (h *Handler) listJobs(c *gin.Context) {
	sourceID, ok := queryID(c, "data_source")
	if !ok {
		return
	}
	list, err := h.etl.ListJobs(c.Request.Context(), sourceID, c.Query("status"))
	if err != nil {
		h.respondError(c, h.log(c, "listJobs"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Register an ETL job
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param job body ETLJobRequest true "ETL job"
// @Success 201 {object} models.ETLJob
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Job ID already exists"
// @Router /etl/etl-jobs [post]
func (h *Handler) createJob(c *gin.Context) {
	var input ETLJobRequest
	log := h.log(c, "createJob")
	if !h.bindJSON(c, log, &input) {
		return
	}
	job := DTOToETLJobModel(input)
	if err := h.etl.CreateJob(c.Request.Context(), job); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// @Summary Get an ETL job
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Success 200 {object} models.ETLJob
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/etl-jobs/{id} [get]
func (h *Handler) getJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.etl.GetJob(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getJob"), err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary Replace job parameters
// @Description Status and counters are changed only through transition and counters.
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Param parameters body ETLJobParametersRequest true "Parameters"
// @Success 200 {object} models.ETLJob
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/etl-jobs/{id} [put]
func (h *Handler) updateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ETLJobParametersRequest
	log := h.log(c, "updateJob")
	if !h.bindJSON(c, log, &input) {
		return
	}
	job, err := h.etl.UpdateJobParameters(c.Request.Context(), id, input.Parameters)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary Delete an ETL job
// @Tags ETL
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/etl-jobs/{id} [delete]
func (h *Handler) deleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.etl.DeleteJob(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteJob"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change job status
// @Description scheduled -> running|canceled, running -> completed|failed|canceled. Terminal states are final.
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Param transition body JobTransitionRequest true "Target status"
// @Success 200 {object} models.ETLJob
// @Failure 400 {object} ErrorResponse "Transition not allowed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Job changed concurrently"
// @Router /etl/etl-jobs/{id}/transition [post]
func (h *Handler) transitionJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input JobTransitionRequest
	log := h.log(c, "transitionJob").WithField("job_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	job, err := h.etl.TransitionJob(c.Request.Context(), id, DTOToJobTransition(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary Update job counters
// @Description Counters are monotonic: a decrease is rejected.
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Param counters body JobCountersRequest true "Counters"
// @Success 200 {object} models.ETLJob
// @Failure 400 {object} ErrorResponse "Counter decreased"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/etl-jobs/{id}/counters [patch]
func (h *Handler) updateJobCounters(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input JobCountersRequest
	log := h.log(c, "updateJobCounters").WithField("job_id", id)
	if !h.bindJSON(c, log, &input) {
		return
	}
	job, err := h.etl.UpdateJobCounters(c.Request.Context(), id, DTOToJobCounters(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary List validation rules
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param data_source query int false "Filter by data source"
// @Success 200 {array} models.DataValidationRule
// @Router /etl/validation-rules [get]
func (h *Handler) listRules(c *gin.Context) {
	sourceID, ok := queryID(c, "data_source")
	if !ok {
		return
	}
	list, err := h.etl.ListRules(c.Request.Context(), sourceID)
	if err != nil {
		h.respondError(c, h.log(c, "listRules"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create a validation rule
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param rule body ValidationRuleRequest true "Validation rule"
// @Success 201 {object} models.DataValidationRule
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /etl/validation-rules [post]
func (h *Handler) createRule(c *gin.Context) {
	var input ValidationRuleRequest
	log := h.log(c, "createRule")
	if !h.bindJSON(c, log, &input) {
		return
	}
	rule := DTOToValidationRuleModel(input)
	if err := h.etl.CreateRule(c.Request.Context(), rule); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// @Summary Get a validation rule
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Rule ID"
// @Success 200 {object} models.DataValidationRule
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/validation-rules/{id} [get]
func (h *Handler) getRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rule, err := h.etl.GetRule(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getRule"), err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// @Summary Update a validation rule
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Rule ID"
// @Param rule body ValidationRuleRequest true "Validation rule"
// @Success 200 {object} models.DataValidationRule
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/validation-rules/{id} [put]
func (h *Handler) updateRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ValidationRuleRequest
	log := h.log(c, "updateRule")
	if !h.bindJSON(c, log, &input) {
		return
	}
	rule := DTOToValidationRuleModel(input)
	rule.ID = id
	if err := h.etl.UpdateRule(c.Request.Context(), rule); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// @Summary Delete a validation rule
// @Tags ETL
// @Security SessionAuth
// @Param id path int true "Rule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/validation-rules/{id} [delete]
func (h *Handler) deleteRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.etl.DeleteRule(c.Request.Context(), id); err != nil {
		h.respondError(c, h.log(c, "deleteRule"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Log entries of a job
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Job ID"
// @Success 200 {array} models.ETLJobLog
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/etl-jobs/{id}/job_logs [get]
func (h *Handler) jobLogs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log := h.log(c, "jobLogs").WithField("job_id", id)
	if _, err := h.etl.GetJob(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	list, err := h.etl.ListLogs(c.Request.Context(), &id, "")
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary List job log entries
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param job query int false "Filter by job"
// @Param level query string false "Filter by level"
// @Success 200 {array} models.ETLJobLog
// @Router /etl/job-logs [get]
func (h *Handler) listJobLogs(c *gin.Context) {
	jobID, ok := queryID(c, "job")
	if !ok {
		return
	}
	list, err := h.etl.ListLogs(c.Request.Context(), jobID, c.Query("level"))
	if err != nil {
		h.respondError(c, h.log(c, "listJobLogs"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Append a job log entry
// @Tags ETL
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param entry body JobLogRequest true "Log entry"
// @Success 201 {object} models.ETLJobLog
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /etl/job-logs [post]
func (h *Handler) createJobLog(c *gin.Context) {
	var input JobLogRequest
	log := h.log(c, "createJobLog")
	if !h.bindJSON(c, log, &input) {
		return
	}
	entry := DTOToJobLogModel(input)
	if err := h.etl.CreateLog(c.Request.Context(), entry); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// @Summary Get a job log entry
// @Tags ETL
// @Produce json
// @Security SessionAuth
// @Param id path int true "Log entry ID"
// @Success 200 {object} models.ETLJobLog
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /etl/job-logs/{id} [get]
func (h *Handler) getJobLog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := h.etl.GetLog(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, h.log(c, "getJobLog"), err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
