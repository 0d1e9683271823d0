package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/metrics"
	"backoffice/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	noSeatDisplay    = "no seat"
	noGroupDisplay   = "-"
	manifestDocument = "manifest"
)

// DocumentStore persists rendered files.
type DocumentStore interface {
	Create(ctx context.Context, doc models.Document) error
}

// ClassifyPassenger returns the manifest type label for a passenger.
func ClassifyPassenger(p models.Passenger) string {
	if p.IsLapChild {
		return models.TypeLapChild
	}
	if p.Age == nil {
		return models.TypeAdult
	}
	switch age := *p.Age; {
	case age <= 5:
		return models.TypeExempt
	case age <= 11:
		return models.TypeChild
	default:
		return models.TypeAdult
	}
}

// SeatDisplay renders "#<n>" or the no-seat placeholder.
func SeatDisplay(p models.Passenger) string {
	if !p.HasSeat() {
		return noSeatDisplay
	}
	return fmt.Sprintf("#%d", p.Seat())
}

// GroupLabel renders the color and group number, or a placeholder.
func GroupLabel(p models.Passenger) string {
	if p.GroupColor == "" {
		return noGroupDisplay
	}
	return fmt.Sprintf("%s %d", p.GroupColor, p.Group())
}

// BuildManifest orders the passengers of trip into manifest rows.
//
// Passengers are first bucketed (seated by seat number, then unseated
// principals, lap children and unseated accompanying passengers, each by
// name) and the concatenation is stable-sorted by group color rank, group
// number and name. Passengers of other trips are ignored and colors outside
// the palette are printed as colorless.
func BuildManifest(trip *models.Trip, passengers []models.Passenger) ([]models.ManifestRow, error) {
	if trip == nil {
		return nil, domain.ValidationError{Field: "trip_id", Err: domain.ErrNoTripSelected}
	}

	coll := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	byName := func(list []models.Passenger) {
		sort.SliceStable(list, func(i, j int) bool {
			return coll.CompareString(list[i].FullName, list[j].FullName) < 0
		})
	}

	var seated, principals, lapChildren, accompanying []models.Passenger
	for _, p := range passengers {
		if p.TripID != trip.ID {
			continue
		}
		if !p.GroupColor.Valid() {
			p.GroupColor = ""
		}
		switch {
		case p.IsLapChild:
			lapChildren = append(lapChildren, p)
		case p.HasSeat():
			seated = append(seated, p)
		case p.IsAccompanying():
			accompanying = append(accompanying, p)
		default:
			principals = append(principals, p)
		}
	}
	sort.SliceStable(seated, func(i, j int) bool { return seated[i].Seat() < seated[j].Seat() })
	byName(principals)
	byName(lapChildren)
	byName(accompanying)

	ordered := make([]models.Passenger, 0, len(seated)+len(principals)+len(lapChildren)+len(accompanying))
	ordered = append(ordered, seated...)
	ordered = append(ordered, principals...)
	ordered = append(ordered, lapChildren...)
	ordered = append(ordered, accompanying...)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ra, rb := a.GroupColor.Rank(), b.GroupColor.Rank(); ra != rb {
			return ra < rb
		}
		if ga, gb := a.Group(), b.Group(); ga != gb {
			return ga < gb
		}
		return coll.CompareString(a.FullName, b.FullName) < 0
	})

	rows := make([]models.ManifestRow, 0, len(ordered))
	for i, p := range ordered {
		newGroup := false
		if i > 0 {
			prev := ordered[i-1]
			newGroup = prev.GroupColor != p.GroupColor || prev.Group() != p.Group()
		}
		rows = append(rows, models.ManifestRow{
			Index:            i + 1,
			NewGroup:         newGroup,
			GroupColor:       p.GroupColor,
			GroupLabel:       GroupLabel(p),
			Passenger:        p,
			DisplayName:      strings.ToUpper(utils.NormalizeSpace(p.FullName)),
			DocumentID:       p.DocumentID,
			TypeLabel:        ClassifyPassenger(p),
			SeatDisplay:      SeatDisplay(p),
			BoardingLocation: p.BoardingLocation,
		})
	}
	return rows, nil
}

// ManifestService loads a trip and renders its manifest.
type ManifestService struct {
	Trips      TripStore
	Passengers PassengerStore
	Documents  DocumentStore
	RequestID  string
	Now        func() time.Time
}

func (s ManifestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Build returns the manifest document for a trip.
func (s ManifestService) Build(ctx context.Context, tripID int64) (models.Manifest, error) {
	if tripID <= 0 {
		return models.Manifest{}, domain.ValidationError{Field: "trip_id", Err: domain.ErrNoTripSelected}
	}
	start := time.Now()
	defer func() { metrics.ManifestBuildDuration.Observe(time.Since(start).Seconds()) }()

	trip, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return models.Manifest{}, err
	}
	passengers, err := s.Passengers.ListByTrip(ctx, tripID)
	if err != nil {
		return models.Manifest{}, err
	}
	rows, err := BuildManifest(&trip, passengers)
	if err != nil {
		return models.Manifest{}, err
	}

	header := models.ManifestHeader{
		TripName:       trip.Name,
		Destination:    trip.Destination,
		VehicleModel:   trip.VehicleModel,
		Capacity:       trip.Capacity,
		PassengerCount: len(rows),
		GeneratedAt:    s.now(),
	}
	if trip.DepartureDate != nil {
		header.DepartureDate = utils.FormatDisplayDate(*trip.DepartureDate)
	}

	utils.LogEventf(s.RequestID, "manifest", "build", "trip_id=%d rows=%d", tripID, len(rows))
	return models.Manifest{Header: header, Rows: rows}, nil
}

// RenderPDF builds and renders the manifest of a trip.
func (s ManifestService) RenderPDF(ctx context.Context, tripID int64) ([]byte, string, error) {
	manifest, err := s.Build(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	pdf, filename, err := RenderManifestPDF(manifest)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render manifest pdf", Err: err}
	}
	metrics.ManifestsGenerated.WithLabelValues("pdf").Inc()
	return pdf, filename, nil
}

// Store renders the manifest and saves it through the document store.
func (s ManifestService) Store(ctx context.Context, tripID int64) (models.Document, error) {
	pdf, filename, err := s.RenderPDF(ctx, tripID)
	if err != nil {
		return models.Document{}, err
	}
	doc := models.Document{
		ID:          uuid.NewString(),
		TripID:      tripID,
		Kind:        manifestDocument,
		FileName:    filename,
		ContentType: "application/pdf",
		Data:        pdf,
		CreatedAt:   s.now(),
	}
	if err := s.Documents.Create(ctx, doc); err != nil {
		return models.Document{}, err
	}
	utils.LogEventf(s.RequestID, "manifest", "store", "trip_id=%d document_id=%s bytes=%d", tripID, doc.ID, len(pdf))
	return doc, nil
}
