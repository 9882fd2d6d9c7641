package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grooming-dashboard-backend/internal/model"
)

type putTechnicianRequest struct {
	Name         string `json:"name" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	Restrictions string `json:"restrictions"`
	Cities       string `json:"cities"`
}

// GetTechnicians handles GET /api/technicians.
func (h *Handler) GetTechnicians(c *gin.Context) {
	techs, err := h.store.ListTechnicians(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve technicians"})
		return
	}
	c.JSON(http.StatusOK, techs)
}

// PutTechnician handles POST /api/technicians, upserting by name.
func (h *Handler) PutTechnician(c *gin.Context) {
	var req putTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tech := model.Technician{
		Name:         req.Name,
		ZipCode:      req.ZipCode,
		Restrictions: req.Restrictions,
		Cities:       req.Cities,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := h.store.UpsertTechnician(c.Request.Context(), &tech); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save technician"})
		return
	}

	c.JSON(http.StatusCreated, tech)
}
