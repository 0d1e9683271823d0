package handlers

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

type tripDTO struct {
	models.Trip
	Seats         int    `json:"seats"`
	DepartureText string `json:"departure_text,omitempty"`
}

func toTripDTO(t models.Trip) tripDTO {
	out := tripDTO{Trip: t}
	if layout, err := services.LayoutForTrip(t); err == nil {
		out.Seats = len(layout.SeatNumbers())
	}
	if t.DepartureDate != nil {
		out.DepartureText = utils.FormatDisplayDate(*t.DepartureDate)
	}
	return out
}

// GET /api/trips?destination=&from=YYYY-MM-DD
func ListTrips(c *gin.Context) {
	filter := repositories.TripFilter{Destination: strings.TrimSpace(c.Query("destination"))}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_from", "from must be YYYY-MM-DD", nil)
			return
		}
		filter.From = &from
	}
	trips, err := Trips.List(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]tripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripDTO(t))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	trip, err := Trips.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(trip))
}

// GET /api/trips/:id/layout
func GetTripLayout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	trip, err := Trips.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	layout, err := services.LayoutForTrip(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEventf(middleware.GetRequestID(c), "layout", "get", "trip_id=%d model=%s seats=%d", id, layout.Model, len(layout.SeatNumbers()))
	c.JSON(http.StatusOK, gin.H{
		"vehicle_model": layout.Model,
		"capacity":      layout.Capacity,
		"floors":        layout.Floors(),
		"cells":         layout.Cells,
	})
}
