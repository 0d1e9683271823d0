package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

type assignSeatRequest struct {
	SeatNumber int `json:"seat_number" binding:"required"`
}

// GET /api/trips/:id/seat-map?q=&selected=
func GetSeatMap(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	session := services.SeatMapSession{Query: c.Query("q")}
	if raw := strings.TrimSpace(c.Query("selected")); raw != "" {
		seat, err := utils.ParseSeatNumber(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_selected", "invalid selected seat", err.Error())
			return
		}
		if seat != nil {
			session.Selected = *seat
		}
	}

	svc := services.SeatMapService{
		Trips:      Trips,
		Passengers: Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
	m, err := svc.Get(c.Request.Context(), id, session)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// PUT /api/trips/:id/passengers/:pid/seat
func AssignSeat(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	passengerID, ok := paramID(c, "pid")
	if !ok {
		return
	}
	var req assignSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AllocationService{
		Trips:      Trips,
		Passengers: Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
	p, err := svc.Assign(c.Request.Context(), tripID, passengerID, req.SeatNumber)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/trips/:id/passengers/:pid/seat?confirm=true
func ReleaseSeat(c *gin.Context) {
	tripID, ok := paramID(c, "id")
	if !ok {
		return
	}
	passengerID, ok := paramID(c, "pid")
	if !ok {
		return
	}
	if confirmed, _ := strconv.ParseBool(c.Query("confirm")); !confirmed {
		respondError(c, http.StatusPreconditionRequired, "confirmation_required", "releasing a seat must be confirmed with confirm=true", nil)
		return
	}

	svc := services.AllocationService{
		Trips:      Trips,
		Passengers: Passengers,
		RequestID:  middleware.GetRequestID(c),
	}
	p, err := svc.Release(c.Request.Context(), tripID, passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
