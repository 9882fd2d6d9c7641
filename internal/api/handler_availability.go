package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grooming-dashboard-backend/internal/availability"
	"grooming-dashboard-backend/internal/geo"
)

// Grooming one pet takes an hour; the visit length scales with head count.
const minutesPerPet = 60

type availabilityRequest struct {
	ZipCode string `json:"zipCode" binding:"required"`
	NumPets int    `json:"numPets" binding:"required,min=1"`
	Margin  int    `json:"margin" binding:"min=0"`
}

// SearchAvailability handles POST /api/appointments/availability.
func (h *Handler) SearchAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := h.now()
	from, to := availability.HorizonBounds(now, h.loc)
	snap, err := h.store.Snapshot(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("availability snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	options, err := h.searcher.Search(c.Request.Context(), availability.Request{
		ZipCode:        req.ZipCode,
		ServiceMinutes: req.NumPets * minutesPerPet,
		MarginMinutes:  req.Margin,
		Now:            now,
	}, snap)
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown zip code"})
			return
		}
		log.Printf("availability search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "options": options})
}
