package services

import (
	"strconv"
	"strings"

	"backoffice/internal/domain/models"

	"golang.org/x/text/cases"
)

// SeatMatches decides whether a seat stays highlighted for a search query.
// A blank query matches everything. It only drives dimming on the seat map.
func SeatMatches(seat int, occupant *models.Passenger, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	if strings.Contains(strconv.Itoa(seat), q) {
		return true
	}
	if occupant == nil {
		return false
	}
	fold := cases.Fold()
	fq := fold.String(q)
	if strings.Contains(fold.String(occupant.FullName), fq) {
		return true
	}
	return strings.Contains(fold.String(occupant.DocumentID), fq)
}
