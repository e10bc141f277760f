package v1

import (
	"github.com/google/uuid"
	"github.com/streetbites/streetbites_backend/internal/geo"
	"github.com/streetbites/streetbites_backend/internal/models"
)

// DTOToBusinessModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToBusinessModel(dto any) *models.Business {
	switch v := dto.(type) {
	case CreateBusinessRequest:
		return &models.Business{
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
			Location:    models.Coordinate{Latitude: v.Latitude, Longitude: v.Longitude},
		}
	case UpdateBusinessRequest:
		return &models.Business{
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
			Status:      models.BusinessStatus(v.Status),
			Location:    models.Coordinate{Latitude: v.Latitude, Longitude: v.Longitude},
		}
	}
	return nil
}

// ModelToBusinessResponse преобразует доменную модель в DTO для ответа
func ModelToBusinessResponse(model *models.Business) *BusinessResponse {
	resp := &BusinessResponse{
		ID:             model.ID,
		Name:           model.Name,
		Category:       model.Category,
		Description:    model.Description,
		Status:         string(model.Status),
		Latitude:       model.Location.Latitude,
		Longitude:      model.Location.Longitude,
		CheckedInUsers: model.CheckedInUsers,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
	if resp.CheckedInUsers == nil {
		resp.CheckedInUsers = []string{}
	}
	for _, entry := range model.ScheduledLocations {
		resp.ScheduledLocations = append(resp.ScheduledLocations, *ModelToScheduleEntryResponse(&entry))
	}
	return resp
}

// ModelsToBusinessResponses преобразует слайс моделей в слайс DTO
func ModelsToBusinessResponses(models []*models.Business) []*BusinessResponse {
	responses := make([]*BusinessResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToBusinessResponse(model)
	}
	return responses
}

// DTOToScheduleEntryModel преобразует DTO создания/обновления в доменную модель
func DTOToScheduleEntryModel(dto any) *models.ScheduledLocation {
	buildCoords := func(lat, lon *float64) *models.Coordinate {
		if lat == nil || lon == nil {
			return nil
		}
		return &models.Coordinate{Latitude: *lat, Longitude: *lon}
	}

	switch v := dto.(type) {
	case CreateScheduleEntryRequest:
		return &models.ScheduledLocation{
			CompanyID:    v.CompanyID,
			BusinessID:   v.BusinessID,
			DayOfWeek:    models.Weekday(v.DayOfWeek),
			LocationName: v.LocationName,
			Address:      v.Address,
			Coordinates:  buildCoords(v.Latitude, v.Longitude),
			StartTime:    v.StartTime,
			EndTime:      v.EndTime,
			Description:  v.Description,
		}
	case UpdateScheduleEntryRequest:
		return &models.ScheduledLocation{
			DayOfWeek:    models.Weekday(v.DayOfWeek),
			LocationName: v.LocationName,
			Address:      v.Address,
			Coordinates:  buildCoords(v.Latitude, v.Longitude),
			StartTime:    v.StartTime,
			EndTime:      v.EndTime,
			Description:  v.Description,
		}
	}
	return nil
}

// ModelToScheduleEntryResponse преобразует доменную модель в DTO для ответа
func ModelToScheduleEntryResponse(model *models.ScheduledLocation) *ScheduleEntryResponse {
	resp := &ScheduleEntryResponse{
		ID:           model.ID,
		CompanyID:    model.CompanyID,
		BusinessID:   model.BusinessID,
		DayOfWeek:    string(model.DayOfWeek),
		LocationName: model.LocationName,
		Address:      model.Address,
		StartTime:    model.StartTime,
		EndTime:      model.EndTime,
		Attendees:    model.Attendees,
		Description:  model.Description,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Coordinates != nil {
		lat, lon := model.Coordinates.Latitude, model.Coordinates.Longitude
		resp.Latitude, resp.Longitude = &lat, &lon
	}
	if resp.Attendees == nil {
		resp.Attendees = []string{}
	}
	return resp
}

// ModelsToScheduleEntryResponses преобразует слайс моделей в слайс DTO
func ModelsToScheduleEntryResponses(entries []models.ScheduledLocation) []*ScheduleEntryResponse {
	responses := make([]*ScheduleEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ModelToScheduleEntryResponse(&entries[i])
	}
	return responses
}

// DecisionToResponse преобразует решение о допуске в DTO для ответа
func DecisionToResponse(decision geo.CheckInDecision) CheckInDecisionResponse {
	return CheckInDecisionResponse{
		Eligible:       decision.Eligible,
		Reason:         string(decision.Reason),
		DistanceMeters: decision.DistanceMeters,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(notifications []models.ProximityNotification) []*ProximityNotificationResponse {
	responses := make([]*ProximityNotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = &ProximityNotificationResponse{
			BusinessID:          n.BusinessID,
			BusinessName:        n.BusinessName,
			ScheduledLocationID: n.ScheduledLocationID,
			LocationName:        n.LocationName,
			Message:             n.Message,
			DistanceMeters:      n.DistanceMeters,
		}
	}
	return responses
}

// ModelToProfileResponse преобразует доменную модель профиля в DTO для ответа
func ModelToProfileResponse(model *models.UserProfile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:                   model.ID,
		Name:                 model.Name,
		NotificationsEnabled: model.NotificationsEnabled,
		Following:            model.Following,
		PassportStamps:       model.PassportStamps,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
	if resp.Following == nil {
		resp.Following = []uuid.UUID{}
	}
	if resp.PassportStamps == nil {
		resp.PassportStamps = []uuid.UUID{}
	}
	return resp
}
