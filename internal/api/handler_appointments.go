package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"grooming-dashboard-backend/internal/model"
	"grooming-dashboard-backend/internal/parse"
)

type createAppointmentRequest struct {
	Technician string    `json:"technician" binding:"required"`
	Customer   string    `json:"customer"`
	ZipCode    string    `json:"zipCode" binding:"required"`
	DateTime   time.Time `json:"dateTime" binding:"required"`
	Duration   int       `json:"duration" binding:"required,min=1"`
}

type createBlockRequest struct {
	Technician string `json:"technician" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
}

// GetAppointments handles GET /api/appointments?date=YYYY-MM-DD.
func (h *Handler) GetAppointments(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	day, err := time.ParseInLocation("2006-01-02", dateParam, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	appts, err := h.store.AppointmentsBetween(c.Request.Context(), day, day.AddDate(0, 0, 1))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CreateAppointment handles POST /api/appointments.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt := model.Appointment{
		Technician:      req.Technician,
		Customer:        req.Customer,
		ZipCode:         req.ZipCode,
		StartAt:         req.DateTime,
		DurationMinutes: req.Duration,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), &appt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save appointment"})
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// DeleteAppointment handles DELETE /api/appointments/:id.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateBlock handles POST /api/blocks.
func (h *Handler) CreateBlock(c *gin.Context) {
	var req createBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	startMin, err := parse.MinuteOfDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start, use HH:MM"})
		return
	}
	endMin, err := parse.MinuteOfDay(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end, use HH:MM"})
		return
	}
	if endMin <= startMin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	block := model.UnavailabilityBlock{
		Technician: req.Technician,
		Date:       day,
		Start:      req.Start,
		End:        req.End,
	}
	if err := h.store.CreateBlock(c.Request.Context(), &block); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save unavailability block"})
		return
	}

	c.JSON(http.StatusCreated, block)
}
