package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/config"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/service"
)

type Handler struct {
	alertService service.AlertService
	enqueuer     queue.Enqueuer
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(alertService service.AlertService, enqueuer queue.Enqueuer, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		enqueuer:     enqueuer,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Trigger a new safety alert
// @Description Create a safety alert and start its response cascade (dispatch, lockdown, notifications, escalation timer). Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body TriggerAlertRequest true "Alert trigger request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) triggerAlert(c *gin.Context) {
	var input TriggerAlertRequest
	log := h.logger.WithField("method", "triggerAlert")

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

	model := DTOToAlertModel(input)
	if err := h.alertService.TriggerAlert(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to trigger alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(model))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Acknowledge an alert
// @Description Mark a TRIGGERED alert as acknowledged by a human, which also disarms the pending auto-escalation. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Alert is not in an acknowledgeable state"
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	if err := h.alertService.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert in service")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an alert
// @Description Close an alert. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Alert already closed"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	if err := h.alertService.ResolveAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to resolve alert in service")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Ingest an RFID scan event
// @Description Accept a bus RFID scan webhook and enqueue parent notification processing. Requires API key.
// @Tags Transport
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param scan body RFIDScanRequest true "RFID scan event"
// @Success 202 {object} JobAcceptedResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /transport/rfid-scan [post]
func (h *Handler) ingestRFIDScan(c *gin.Context) {
	var input RFIDScanRequest
	log := h.logger.WithField("method", "ingestRFIDScan")

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

	jobID, err := h.enqueuer.Enqueue(c.Request.Context(), jobs.JobRFIDScan, jobs.RFIDScanJobPayload{
		StudentCardID: input.StudentCardID,
		StudentName:   input.StudentName,
		BusID:         input.BusID,
		BusNumber:     input.BusNumber,
		ScanType:      input.ScanType,
		ScannedAt:     input.ScannedAt,
	}, 0)
	if err != nil {
		log.WithError(err).Error("Failed to enqueue RFID scan job")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, JobAcceptedResponse{JobID: jobID})
}

// @Summary Ingest a bus GPS update
// @Description Accept a bus GPS webhook and enqueue geofence processing. Requires API key.
// @Tags Transport
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param update body GPSUpdateRequest true "GPS update event"
// @Success 202 {object} JobAcceptedResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /transport/gps [post]
func (h *Handler) ingestGPSUpdate(c *gin.Context) {
	var input GPSUpdateRequest
	log := h.logger.WithField("method", "ingestGPSUpdate")

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

	jobID, err := h.enqueuer.Enqueue(c.Request.Context(), jobs.JobGPSUpdate, jobs.GPSUpdateJobPayload{
		BusID:     input.BusID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}, 0)
	if err != nil {
		log.WithError(err).Error("Failed to enqueue GPS update job")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, JobAcceptedResponse{JobID: jobID})
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
