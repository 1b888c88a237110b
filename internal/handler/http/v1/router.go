package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/accounts/auth/register", h.register)
	api.POST("/accounts/auth/login", h.LoginRateLimitMiddleware(), h.login)
	api.GET("/system/health", h.healthCheck)

	// Все остальное требует сессии
	auth := api.Group("", h.SessionAuthMiddleware())

	accounts := auth.Group("/accounts")
	{
		accounts.POST("/auth/logout", h.logout)
		accounts.GET("/users/me", h.me)
		accounts.GET("/profile", h.getProfile)
		accounts.PUT("/profile", h.updateProfile)
		accounts.GET("/login-history", h.loginHistory)
	}

	agencies := auth.Group("/agencies")
	{
		agencies.GET("/agencies", h.listAgencies)
		agencies.POST("/agencies", h.createAgency)
		agencies.GET("/agencies/:id", h.getAgency)
		agencies.PUT("/agencies/:id", h.updateAgency)
		agencies.DELETE("/agencies/:id", h.deleteAgency)
		agencies.GET("/agencies/:id/api_config", h.getAgencyAPIConfig)
		agencies.PUT("/agencies/:id/api_config", h.putAgencyAPIConfig)
		agencies.GET("/agencies/:id/authorized_users", h.agencyAuthorizedUsers)

		agencies.GET("/api-configs", h.listAPIConfigs)
		agencies.POST("/api-configs", h.createAPIConfig)
		agencies.GET("/api-configs/:id", h.getAPIConfig)
		agencies.PUT("/api-configs/:id", h.updateAPIConfig)
		agencies.DELETE("/api-configs/:id", h.deleteAPIConfig)

		agencies.GET("/agency-users", h.listAgencyUsers)
		agencies.POST("/agency-users", h.createAgencyUser)
		agencies.GET("/agency-users/:id", h.getAgencyUser)
		agencies.PUT("/agency-users/:id", h.updateAgencyUser)
		agencies.DELETE("/agency-users/:id", h.deleteAgencyUser)
	}

	crimes := auth.Group("/crimes")
	{
		crimes.GET("/categories", h.listCategories)
		crimes.POST("/categories", h.createCategory)
		crimes.GET("/categories/:id", h.getCategory)
		crimes.PUT("/categories/:id", h.updateCategory)
		crimes.DELETE("/categories/:id", h.deleteCategory)

		crimes.GET("/types", h.listTypes)
		crimes.POST("/types", h.createType)
		crimes.GET("/types/:id", h.getType)
		crimes.PUT("/types/:id", h.updateType)
		crimes.DELETE("/types/:id", h.deleteType)

		crimes.GET("/incidents", h.listCrimes)
		crimes.POST("/incidents", h.createCrime)
		crimes.GET("/incidents/spatial", h.spatialCrimes)
		crimes.GET("/incidents/:id", h.getCrime)
		crimes.PUT("/incidents/:id", h.updateCrime)
		crimes.DELETE("/incidents/:id", h.deleteCrime)

		crimes.GET("/attributes", h.listAttributes)
		crimes.POST("/attributes", h.createAttribute)
		crimes.GET("/attributes/:id", h.getAttribute)
		crimes.PUT("/attributes/:id", h.updateAttribute)
		crimes.DELETE("/attributes/:id", h.deleteAttribute)
	}

	alerts := auth.Group("/alerts")
	{
		alerts.GET("/alerts", h.listAlerts)
		alerts.POST("/alerts", h.createAlert)
		alerts.GET("/alerts/active_alerts", h.activeAlerts)
		alerts.GET("/alerts/:id", h.getAlert)
		alerts.PUT("/alerts/:id", h.updateAlert)
		alerts.DELETE("/alerts/:id", h.deleteAlert)
		alerts.GET("/alerts/:id/recent_matches", h.recentMatches)
		alerts.POST("/alerts/:id/evaluate", h.evaluateAlert)

		alerts.GET("/alert-notifications", h.listNotifications)
		alerts.GET("/alert-notifications/:id", h.getNotification)
		alerts.PATCH("/alert-notifications/:id", h.updateNotificationStatus)
	}

	reports := auth.Group("/reports")
	{
		reports.GET("/reports", h.listReports)
		reports.POST("/reports", h.createReport)
		reports.GET("/reports/pending_reports", h.pendingReports)
		reports.GET("/reports/:id", h.getReport)
		reports.PUT("/reports/:id", h.updateReport)
		reports.DELETE("/reports/:id", h.deleteReport)
		reports.POST("/reports/:id/regenerate", h.regenerateReport)

		reports.GET("/templates", h.listTemplates)
		reports.POST("/templates", h.createTemplate)
		reports.GET("/templates/public_templates", h.publicTemplates)
		reports.GET("/templates/:id", h.getTemplate)
		reports.PUT("/templates/:id", h.updateTemplate)
		reports.DELETE("/templates/:id", h.deleteTemplate)

		reports.GET("/scheduled", h.listScheduled)
		reports.POST("/scheduled", h.createScheduled)
		reports.GET("/scheduled/upcoming_reports", h.upcomingScheduled)
		reports.GET("/scheduled/:id", h.getScheduled)
		reports.PUT("/scheduled/:id", h.updateScheduled)
		reports.DELETE("/scheduled/:id", h.deleteScheduled)
		reports.POST("/scheduled/:id/toggle_active", h.toggleScheduled)
	}

	analytics := auth.Group("/analytics")
	{
		analytics.GET("/predictive-models", h.listModels)
		analytics.POST("/predictive-models", h.createModel)
		analytics.GET("/predictive-models/:id", h.getModel)
		analytics.PUT("/predictive-models/:id", h.updateModel)
		analytics.DELETE("/predictive-models/:id", h.deleteModel)
		analytics.POST("/predictive-models/:id/train_model", h.trainModel)
		analytics.POST("/predictive-models/:id/deploy_model", h.deployModel)

		analytics.GET("/predictions", h.listPredictions)
		analytics.POST("/predictions", h.createPrediction)
		analytics.GET("/predictions/:id", h.getPrediction)
		analytics.PUT("/predictions/:id", h.updatePrediction)
		analytics.DELETE("/predictions/:id", h.deletePrediction)
		analytics.POST("/predictions/:id/verify_prediction", h.verifyPrediction)

		analytics.GET("/analysis-requests", h.listAnalysisRequests)
		analytics.POST("/analysis-requests", h.createAnalysisRequest)
		analytics.GET("/analysis-requests/:id", h.getAnalysisRequest)
		analytics.PUT("/analysis-requests/:id", h.updateAnalysisRequest)
		analytics.DELETE("/analysis-requests/:id", h.deleteAnalysisRequest)
		analytics.POST("/analysis-requests/:id/process_request", h.processAnalysisRequest)
	}

	etl := auth.Group("/etl")
	{
		etl.GET("/data-sources", h.listDataSources)
		etl.POST("/data-sources", h.createDataSource)
		etl.GET("/data-sources/:id", h.getDataSource)
		etl.PUT("/data-sources/:id", h.updateDataSource)
		etl.DELETE("/data-sources/:id", h.deleteDataSource)
		etl.POST("/data-sources/:id/trigger_sync", h.triggerSync)

		etl.GET("/etl-jobs", h.listJobs)
		etl.POST("/etl-jobs", h.createJob)
		etl.GET("/etl-jobs/:id", h.getJob)
		etl.PUT("/etl-jobs/:id", h.updateJob)
		etl.DELETE("/etl-jobs/:id", h.deleteJob)
		etl.POST("/etl-jobs/:id/transition", h.transitionJob)
		etl.PATCH("/etl-jobs/:id/counters", h.updateJobCounters)
		etl.GET("/etl-jobs/:id/job_logs", h.jobLogs)

		etl.GET("/validation-rules", h.listRules)
		etl.POST("/validation-rules", h.createRule)
		etl.GET("/validation-rules/:id", h.getRule)
		etl.PUT("/validation-rules/:id", h.updateRule)
		etl.DELETE("/validation-rules/:id", h.deleteRule)

		etl.GET("/job-logs", h.listJobLogs)
		etl.POST("/job-logs", h.createJobLog)
		etl.GET("/job-logs/:id", h.getJobLog)
	}
}
