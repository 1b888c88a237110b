package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

// parseGeometry разбирает GeoJSON geometry. Пустое значение и null дают nil.
func parseGeometry(raw json.RawMessage) (orb.Geometry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	g, err := geojson.UnmarshalGeometry(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid GeoJSON: %v: %w", err, models.ErrInvalidGeometry)
	}
	return g.Geometry(), nil
}

// parsePoint берет точку из GeoJSON или из пары latitude/longitude
func parsePoint(raw json.RawMessage, lat, lon *float64) (orb.Point, error) {
	if lat != nil && lon != nil {
		return models.NewPoint(*lat, *lon), nil
	}
	if lat != nil || lon != nil {
		return orb.Point{}, service.NewValidationError("location", "Both latitude and longitude are required.")
	}
	g, err := parseGeometry(raw)
	if err != nil {
		return orb.Point{}, err
	}
	if g == nil {
		return orb.Point{}, service.NewValidationError("location", "This field is required.")
	}
	return models.AsPoint(g)
}

func parsePolygon(raw json.RawMessage) (orb.Polygon, error) {
	g, err := parseGeometry(raw)
	if err != nil {
		return nil, err
	}
	return models.AsPolygon(g)
}

func parseMultiPolygon(raw json.RawMessage) (orb.MultiPolygon, error) {
	g, err := parseGeometry(raw)
	if err != nil {
		return nil, err
	}
	return models.AsMultiPolygon(g)
}

func pointGeometry(p orb.Point) *geojson.Geometry {
	return geojson.NewGeometry(p)
}

func polygonGeometry(p orb.Polygon) *geojson.Geometry {
	if p == nil {
		return nil
	}
	return geojson.NewGeometry(p)
}

func multiPolygonGeometry(mp orb.MultiPolygon) *geojson.Geometry {
	if mp == nil {
		return nil
	}
	return geojson.NewGeometry(mp)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// mapSlice применяет fn к каждому элементу
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func DTOToRegisterInput(dto RegisterRequest, clientIP string) models.RegisterInput {
	return models.RegisterInput{
		Username:        dto.Username,
		Email:           dto.Email,
		Password:        dto.Password,
		ConfirmPassword: dto.ConfirmPassword,
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		PhoneNumber:     dto.PhoneNumber,
		UserType:        models.UserType(dto.UserType),
		ClientIP:        clientIP,
	}
}

func DTOToProfileModel(dto ProfileRequest) *models.UserProfile {
	return &models.UserProfile{
		Bio:                 dto.Bio,
		Address:             dto.Address,
		City:                dto.City,
		State:               dto.State,
		ZipCode:             dto.ZipCode,
		Country:             dto.Country,
		DefaultSearchRadius: dto.DefaultSearchRadius,
	}
}

// DTOToAgencyModel преобразует DTO органа в модель
func DTOToAgencyModel(dto AgencyRequest) (*models.Agency, error) {
	area, err := parseMultiPolygon(dto.JurisdictionArea)
	if err != nil {
		return nil, err
	}
	return &models.Agency{
		Name:              dto.Name,
		AgencyCode:        dto.AgencyCode,
		AgencyType:        dto.AgencyType,
		ContactEmail:      dto.ContactEmail,
		ContactPhone:      dto.ContactPhone,
		JurisdictionArea:  area,
		Address:           dto.Address,
		City:              dto.City,
		State:             dto.State,
		ZipCode:           dto.ZipCode,
		IsActive:          boolOr(dto.IsActive, true),
		IntegrationStatus: dto.IntegrationStatus,
	}, nil
}

func ModelToAgencyResponse(model *models.Agency) *AgencyResponse {
	return &AgencyResponse{Agency: model, JurisdictionArea: multiPolygonGeometry(model.JurisdictionArea)}
}

func DTOToAPIConfigModel(dto APIConfigRequest) *models.AgencyAPIConfig {
	return &models.AgencyAPIConfig{
		AgencyID:      dto.AgencyID,
		APIType:       dto.APIType,
		ConnectionURL: dto.ConnectionURL,
		AuthType:      dto.AuthType,
		Username:      dto.Username,
		Password:      dto.Password,
		APIKey:        dto.APIKey,
		Configuration: dto.Configuration,
		SyncSchedule:  dto.SyncSchedule,
	}
}

func DTOToAgencyUserModel(dto AgencyUserRequest) *models.AgencyUser {
	return &models.AgencyUser{
		UserID:    dto.UserID,
		AgencyID:  dto.AgencyID,
		Role:      dto.Role,
		IsPrimary: dto.IsPrimary,
	}
}

func DTOToCategoryModel(dto CategoryRequest) *models.CrimeCategory {
	return &models.CrimeCategory{Name: dto.Name, Description: dto.Description}
}

func DTOToCrimeTypeModel(dto CrimeTypeRequest) *models.CrimeType {
	return &models.CrimeType{
		CategoryID:    dto.CategoryID,
		Name:          dto.Name,
		Description:   dto.Description,
		SeverityLevel: dto.SeverityLevel,
	}
}

// DTOToCrimeModel преобразует DTO инцидента в модель. reported_at по умолчанию равен now.
func DTOToCrimeModel(dto CrimeRequest, now time.Time) (*models.Crime, error) {
	location, err := parsePoint(dto.Location, dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	reportedAt := now
	if dto.ReportedAt != nil {
		reportedAt = *dto.ReportedAt
	}
	crime := &models.Crime{
		IncidentID:         dto.IncidentID,
		CrimeTypeID:        dto.CrimeTypeID,
		Description:        dto.Description,
		OccurredAt:         dto.OccurredAt,
		ReportedAt:         reportedAt,
		AgencyID:           dto.AgencyID,
		DataSource:         dto.DataSource,
		Location:           location,
		BlockAddress:       dto.BlockAddress,
		ZipCode:            dto.ZipCode,
		City:               dto.City,
		State:              dto.State,
		Country:            dto.Country,
		VerificationStatus: models.VerificationStatus(dto.VerificationStatus),
		IsActive:           boolOr(dto.IsActive, true),
	}
	for _, attr := range dto.Attributes {
		crime.Attributes = append(crime.Attributes, &models.CrimeAttribute{Name: attr.Name, Value: attr.Value})
	}
	return crime, nil
}

func ModelToCrimeResponse(model *models.Crime) *CrimeResponse {
	return &CrimeResponse{
		Crime:     model,
		Location:  pointGeometry(model.Location),
		Latitude:  model.Location.Lat(),
		Longitude: model.Location.Lon(),
	}
}

// ModelsToFeatureCollection собирает GeoJSON FeatureCollection для карты
func ModelsToFeatureCollection(crimes []*models.Crime) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, crime := range crimes {
		f := geojson.NewFeature(crime.Location)
		f.ID = crime.ID
		f.Properties = geojson.Properties{
			"incident_id":         crime.IncidentID,
			"crime_type":          crime.CrimeTypeID,
			"crime_type_name":     crime.CrimeTypeName,
			"occurred_at":         crime.OccurredAt,
			"agency":              crime.AgencyID,
			"agency_name":         crime.AgencyName,
			"block_address":       crime.BlockAddress,
			"city":                crime.City,
			"verification_status": crime.VerificationStatus,
		}
		fc.Append(f)
	}
	return fc
}

func DTOToAttributeModel(dto AttributeRequest) *models.CrimeAttribute {
	return &models.CrimeAttribute{CrimeID: dto.CrimeID, Name: dto.Name, Value: dto.Value}
}

// DTOToAlertModel преобразует DTO подписки в модель
func DTOToAlertModel(dto AlertRequest, userID int64) (*models.Alert, error) {
	location, err := parsePoint(dto.Location, dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	return &models.Alert{
		Name:                 dto.Name,
		UserID:               userID,
		CrimeTypeIDs:         dto.CrimeTypeIDs,
		Location:             location,
		Address:              dto.Address,
		SearchDistanceMeters: dto.SearchDistanceMeters,
		IsActive:             boolOr(dto.IsActive, true),
		NotificationMethod:   dto.NotificationMethod,
		CheckFrequency:       models.CheckFrequency(dto.CheckFrequency),
		NotificationContact:  dto.NotificationContact,
	}, nil
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		Alert:     model,
		Location:  pointGeometry(model.Location),
		Latitude:  model.Location.Lat(),
		Longitude: model.Location.Lon(),
	}
}

// DTOToReportModel преобразует DTO отчета в модель
func DTOToReportModel(dto ReportRequest, userID int64) (*models.Report, error) {
	area, err := parsePolygon(dto.AreaOfInterest)
	if err != nil {
		return nil, err
	}
	return &models.Report{
		Title:          dto.Title,
		UserID:         userID,
		Parameters:     dto.Parameters,
		AreaOfInterest: area,
		StartDate:      dto.StartDate,
		EndDate:        dto.EndDate,
		Format:         dto.Format,
		FilePath:       dto.FilePath,
		Status:         dto.Status,
		StatusMessage:  dto.StatusMessage,
		IncludeCharts:  boolOr(dto.IncludeCharts, true),
		IncludeMaps:    boolOr(dto.IncludeMaps, true),
		IncludeTrends:  boolOr(dto.IncludeTrends, true),
		ExpiresAt:      dto.ExpiresAt,
	}, nil
}

func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{Report: model, AreaOfInterest: polygonGeometry(model.AreaOfInterest)}
}

func DTOToTemplateModel(dto TemplateRequest, userID int64) *models.ReportTemplate {
	return &models.ReportTemplate{
		Name:         dto.Name,
		Description:  dto.Description,
		TemplateType: dto.TemplateType,
		Format:       dto.Format,
		TemplateHTML: dto.TemplateHTML,
		Sections:     dto.Sections,
		IsPublic:     dto.IsPublic,
		OwnerID:      &userID,
	}
}

func DTOToScheduledModel(dto ScheduledReportRequest, userID int64) *models.ScheduledReport {
	return &models.ScheduledReport{
		Name:          dto.Name,
		UserID:        userID,
		TemplateID:    dto.TemplateID,
		Parameters:    dto.Parameters,
		Frequency:     dto.Frequency,
		DayOfWeek:     dto.DayOfWeek,
		DayOfMonth:    dto.DayOfMonth,
		Hour:          dto.Hour,
		Minute:        dto.Minute,
		DeliveryEmail: dto.DeliveryEmail,
		IsActive:      boolOr(dto.IsActive, true),
	}
}

func DTOToPredictiveModel(dto PredictiveModelRequest, userID int64) *models.PredictiveModel {
	return &models.PredictiveModel{
		Name:               dto.Name,
		Description:        dto.Description,
		ModelType:          dto.ModelType,
		ModelVersion:       dto.ModelVersion,
		Status:             dto.Status,
		Parameters:         dto.Parameters,
		TargetCrimeTypeIDs: dto.TargetCrimeTypeIDs,
		CreatedBy:          &userID,
	}
}

// DTOToPredictionModel преобразует DTO прогноза в модель
func DTOToPredictionModel(dto PredictionRequest, userID int64) (*models.Prediction, error) {
	area, err := parsePolygon(dto.Area)
	if err != nil {
		return nil, err
	}
	return &models.Prediction{
		ModelID:             dto.ModelID,
		Area:                area,
		PredictionStartDate: dto.PredictionStartDate,
		PredictionEndDate:   dto.PredictionEndDate,
		PredictedCount:      dto.PredictedCount,
		ConfidenceLevel:     dto.ConfidenceLevel,
		Details:             dto.Details,
		GeneratedBy:         &userID,
	}, nil
}

func ModelToPredictionResponse(model *models.Prediction) *PredictionResponse {
	return &PredictionResponse{Prediction: model, Area: polygonGeometry(model.Area)}
}

// DTOToAnalysisRequestModel преобразует DTO запроса на анализ в модель
func DTOToAnalysisRequestModel(dto AnalysisRequestRequest, userID int64) (*models.AnalysisRequest, error) {
	area, err := parsePolygon(dto.Area)
	if err != nil {
		return nil, err
	}
	return &models.AnalysisRequest{
		UserID:             userID,
		Title:              dto.Title,
		Description:        dto.Description,
		Area:               area,
		StartDate:          dto.StartDate,
		EndDate:            dto.EndDate,
		CrimeTypeIDs:       dto.CrimeTypeIDs,
		Status:             dto.Status,
		ResultPredictionID: dto.ResultPredictionID,
	}, nil
}

func ModelToAnalysisRequestResponse(model *models.AnalysisRequest) *AnalysisRequestResponse {
	return &AnalysisRequestResponse{AnalysisRequest: model, Area: polygonGeometry(model.Area)}
}

func DTOToDataSourceModel(dto DataSourceRequest) *models.DataSource {
	return &models.DataSource{
		AgencyID:       dto.AgencyID,
		Name:           dto.Name,
		Description:    dto.Description,
		SourceType:     dto.SourceType,
		Configuration:  dto.Configuration,
		IsActive:       boolOr(dto.IsActive, true),
		FieldMapping:   dto.FieldMapping,
		SyncFrequency:  dto.SyncFrequency,
		CronExpression: dto.CronExpression,
	}
}

func DTOToETLJobModel(dto ETLJobRequest) *models.ETLJob {
	return &models.ETLJob{
		DataSourceID: dto.DataSourceID,
		JobID:        dto.JobID,
		Status:       models.JobStatus(dto.Status),
		Parameters:   dto.Parameters,
	}
}

func DTOToJobTransition(dto JobTransitionRequest) models.JobTransition {
	return models.JobTransition{
		Status:       models.JobStatus(dto.Status),
		ErrorMessage: dto.ErrorMessage,
		ErrorDetails: dto.ErrorDetails,
	}
}

func DTOToJobCounters(dto JobCountersRequest) models.JobCounters {
	return models.JobCounters{
		Processed: dto.Processed,
		Created:   dto.Created,
		Updated:   dto.Updated,
		Skipped:   dto.Skipped,
		Failed:    dto.Failed,
	}
}

func DTOToValidationRuleModel(dto ValidationRuleRequest) *models.DataValidationRule {
	return &models.DataValidationRule{
		DataSourceID:  dto.DataSourceID,
		Name:          dto.Name,
		Description:   dto.Description,
		RuleType:      dto.RuleType,
		FieldName:     dto.FieldName,
		Configuration: dto.Configuration,
		ErrorAction:   dto.ErrorAction,
		Priority:      dto.Priority,
		IsActive:      boolOr(dto.IsActive, true),
	}
}

func DTOToJobLogModel(dto JobLogRequest) *models.ETLJobLog {
	return &models.ETLJobLog{
		JobID:          dto.JobID,
		Level:          dto.Level,
		Message:        dto.Message,
		Context:        dto.Context,
		SourceRecordID: dto.SourceRecordID,
	}
}
