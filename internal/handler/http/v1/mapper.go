package v1

import "github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"

// DTOToAlertModel преобразует DTO создания в доменную модель
func DTOToAlertModel(dto TriggerAlertRequest) *models.Alert {
	return &models.Alert{
		SiteID:        dto.SiteID,
		Level:         models.AlertLevel(dto.Level),
		Source:        models.AlertSource(dto.Source),
		Message:       dto.Message,
		BuildingID:    dto.BuildingID,
		BuildingName:  dto.BuildingName,
		Room:          dto.Room,
		Floor:         dto.Floor,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		TriggeredByID: dto.TriggeredByID,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:            model.ID,
		SiteID:        model.SiteID,
		Level:         string(model.Level),
		Status:        string(model.Status),
		Source:        string(model.Source),
		Message:       model.Message,
		BuildingID:    model.BuildingID,
		BuildingName:  model.BuildingName,
		Room:          model.Room,
		Floor:         model.Floor,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		TriggeredByID: model.TriggeredByID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
