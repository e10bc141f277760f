package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/config"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service"
)

type Handler struct {
	businessService service.BusinessService
	scheduleService service.ScheduleService
	profileService  service.ProfileService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(businessService service.BusinessService, scheduleService service.ScheduleService, profileService service.ProfileService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		businessService: businessService,
		scheduleService: scheduleService,
		profileService:  profileService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new business
// @Description Create a new food truck business in the system. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param business body CreateBusinessRequest true "Business creation request"
// @Success 201 {object} BusinessResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses [post]
func (h *Handler) createBusiness(c *gin.Context) {
	var input CreateBusinessRequest
	log := h.logger.WithField("method", "createBusiness")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBusinessModel(input)
	if err := h.businessService.CreateBusiness(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create business in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToBusinessResponse(model))
}

// @Summary Get a list of businesses
// @Description Get a paginated list of all businesses. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} BusinessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses [get]
func (h *Handler) listBusinesses(c *gin.Context) {
	log := h.logger.WithField("method", "listBusinesses")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list businesses from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBusinessResponses(businesses))
}

// @Summary Find businesses nearby
// @Description Find active businesses within a radius of a point. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {array} BusinessResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	log := h.logger.WithField("method", "findNearby")

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "0"), 64)

	businesses, err := h.businessService.FindNearby(c.Request.Context(), lat, lon, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby businesses in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBusinessResponses(businesses))
}

// @Summary Get business by ID
// @Description Get a single business by its ID. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Success 200 {object} BusinessResponse
// @Failure 400 {object} map[string]string "Invalid business ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Business not found"
// @Router /businesses/{id} [get]
func (h *Handler) getBusiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "getBusiness").WithField("id", id)

	business, err := h.businessService.GetBusiness(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get business from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToBusinessResponse(business))
}

// @Summary Update an existing business
// @Description Update an existing business by ID. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Param business body UpdateBusinessRequest true "Business update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid business ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id} [put]
func (h *Handler) updateBusiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "updateBusiness").WithField("id", id)

	var input UpdateBusinessRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBusinessModel(input)
	model.ID = id

	if err := h.businessService.UpdateBusiness(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update business in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update business in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a business
// @Description Deactivate a business by its ID. This marks the business as closed. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid business ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id} [delete]
func (h *Handler) deleteBusiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "deleteBusiness").WithField("id", id)

	if err := h.businessService.DeactivateBusiness(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate business in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate business"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update live business location
// @Description Update the live GPS position of a business. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Param location body UpdateLocationRequest true "New location"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid business ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := h.businessService.UpdateLocation(c.Request.Context(), id, location); err != nil {
		log.WithError(err).Error("Failed to update business location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update business location"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update business status
// @Description Switch a business between open, closed and on_route. Requires API key.
// @Tags Businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid business ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.businessService.UpdateStatus(c.Request.Context(), id, models.BusinessStatus(input.Status)); err != nil {
		log.WithError(err).Error("Failed to update business status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update business status"})
		return
	}
	c.Status(http.StatusOK)
}

// checkInLocation собирает координаты пользователя из запроса, если они переданы
func checkInLocation(input CheckInRequest) *models.Coordinate {
	if input.Latitude == nil || input.Longitude == nil {
		return nil
	}
	return &models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
}

// @Summary Check check-in eligibility
// @Description Evaluate whether a user may check in at a business without recording anything. Requires API key.
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Param checkin body CheckInRequest true "Eligibility request"
// @Success 200 {object} CheckInDecisionResponse
// @Failure 400 {object} map[string]string "Invalid business ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id}/checkin/eligibility [post]
func (h *Handler) checkInEligibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "checkInEligibility").WithField("id", id)

	var input CheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.businessService.CheckInEligibility(c.Request.Context(), id, input.UserID, checkInLocation(input))
	if err != nil {
		log.WithError(err).Error("Failed to evaluate eligibility in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DecisionToResponse(decision))
}

// @Summary Check in at a business
// @Description Record a check-in for a user at a business if the user is within the check-in radius. Requires API key.
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Param checkin body CheckInRequest true "Check-in request"
// @Success 201 {object} CheckInResponse
// @Success 200 {object} CheckInResponse "Check-in rejected, see decision"
// @Failure 400 {object} map[string]string "Invalid business ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id}/checkin [post]
func (h *Handler) checkIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "checkIn").WithField("id", id)

	var input CheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, decision, err := h.businessService.CheckIn(c.Request.Context(), id, input.UserID, checkInLocation(input))
	if err != nil {
		log.WithError(err).Error("Failed to check in user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := CheckInResponse{Decision: DecisionToResponse(decision)}
	if checkIn == nil {
		// Отказ - не ошибка, клиент получает причину в ответе
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.CheckInID = &checkIn.ID
	checkedInAt := checkIn.CheckedInAt
	resp.CheckedInAt = &checkedInAt
	c.JSON(http.StatusCreated, resp)
}

// @Summary List schedule entries of a business
// @Description Get all schedule entries of a business. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Business ID"
// @Success 200 {array} ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid business ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses/{id}/schedule [get]
func (h *Handler) listSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "listSchedule").WithField("id", id)

	entries, err := h.scheduleService.ListByBusiness(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list schedule entries from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToScheduleEntryResponses(entries))
}

// @Summary Create a schedule entry
// @Description Create a new weekly schedule entry. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entry body CreateScheduleEntryRequest true "Schedule entry creation request"
// @Success 201 {object} ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules [post]
func (h *Handler) createScheduleEntry(c *gin.Context) {
	var input CreateScheduleEntryRequest
	log := h.logger.WithField("method", "createScheduleEntry")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToScheduleEntryModel(input)
	if err := h.scheduleService.CreateEntry(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to create schedule entry in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ModelToScheduleEntryResponse(model))
}

// @Summary Get schedule entry by ID
// @Description Get a single schedule entry by its ID. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule entry ID"
// @Success 200 {object} ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid schedule entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule entry not found"
// @Router /schedules/{id} [get]
func (h *Handler) getScheduleEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule entry ID"})
		return
	}
	log := h.logger.WithField("method", "getScheduleEntry").WithField("id", id)

	entry, err := h.scheduleService.GetEntry(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get schedule entry from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule entry not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToScheduleEntryResponse(entry))
}

// @Summary Update a schedule entry
// @Description Update an existing schedule entry by ID. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule entry ID"
// @Param entry body UpdateScheduleEntryRequest true "Schedule entry update request"
// @Success 200 {object} ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid schedule entry ID, request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id} [put]
func (h *Handler) updateScheduleEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule entry ID"})
		return
	}
	log := h.logger.WithField("method", "updateScheduleEntry").WithField("id", id)

	var input UpdateScheduleEntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToScheduleEntryModel(input)
	model.ID = id

	// Сервис отклоняет невалидные окна и несуществующие записи, это ошибки клиента
	if err := h.scheduleService.UpdateEntry(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to update schedule entry in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ModelToScheduleEntryResponse(model))
}

// @Summary Delete a schedule entry
// @Description Delete a schedule entry by its ID. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid schedule entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id} [delete]
func (h *Handler) deleteScheduleEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule entry ID"})
		return
	}
	log := h.logger.WithField("method", "deleteScheduleEntry").WithField("id", id)

	if err := h.scheduleService.DeleteEntry(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete schedule entry in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle attendance on a schedule entry
// @Description Toggle the "I'm going" mark of a user on a schedule entry. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule entry ID"
// @Param attendance body ToggleAttendanceRequest true "Attendance toggle request"
// @Success 200 {object} ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid schedule entry ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id}/attendance [post]
func (h *Handler) toggleAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule entry ID"})
		return
	}
	log := h.logger.WithField("method", "toggleAttendance").WithField("id", id)

	var input ToggleAttendanceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.scheduleService.ToggleAttendance(c.Request.Context(), id, input.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to toggle attendance in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle attendance"})
		return
	}

	c.JSON(http.StatusOK, ModelToScheduleEntryResponse(entry))
}

// @Summary Check proximity for a user
// @Description Evaluate which followed businesses are currently active near the user. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body ProximityCheckRequest true "Proximity check request"
// @Success 200 {array} ProximityNotificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/check [post]
func (h *Handler) checkProximity(c *gin.Context) {
	var input ProximityCheckRequest
	log := h.logger.WithField("method", "checkProximity")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	notifications, err := h.scheduleService.EvaluateProximity(c.Request.Context(), input.UserID, location, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to evaluate proximity in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Get user profile
// @Description Get a user profile with following list and passport stamps. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /profiles/{id} [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getProfile").WithField("user_id", userID)

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get profile from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Save user profile
// @Description Create or update a user profile. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param profile body SaveProfileRequest true "Profile save request"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles/{id} [put]
func (h *Handler) saveProfile(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "saveProfile").WithField("user_id", userID)

	var input SaveProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &models.UserProfile{
		ID:                   userID,
		Name:                 input.Name,
		NotificationsEnabled: input.NotificationsEnabled,
	}
	if err := h.profileService.SaveProfile(c.Request.Context(), profile); err != nil {
		log.WithError(err).Error("Failed to save profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Follow a business
// @Description Subscribe a user to a business to receive proximity notifications. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param businessId path string true "Business ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid business ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles/{id}/following/{businessId} [put]
func (h *Handler) followBusiness(c *gin.Context) {
	userID := c.Param("id")
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "followBusiness").WithField("user_id", userID)

	if err := h.profileService.FollowBusiness(c.Request.Context(), userID, businessID); err != nil {
		log.WithError(err).Error("Failed to follow business in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow business"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unfollow a business
// @Description Unsubscribe a user from a business. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param businessId path string true "Business ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid business ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles/{id}/following/{businessId} [delete]
func (h *Handler) unfollowBusiness(c *gin.Context) {
	userID := c.Param("id")
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid business ID"})
		return
	}
	log := h.logger.WithField("method", "unfollowBusiness").WithField("user_id", userID)

	if err := h.profileService.UnfollowBusiness(c.Request.Context(), userID, businessID); err != nil {
		log.WithError(err).Error("Failed to unfollow business in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow business"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
