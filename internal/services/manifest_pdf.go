package services

import (
	"bytes"
	"fmt"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

type rgb struct{ r, g, b int }

var swatchColors = map[models.GroupColor]rgb{
	models.GroupRed:    {220, 38, 38},
	models.GroupBlue:   {37, 99, 235},
	models.GroupGreen:  {22, 163, 74},
	models.GroupYellow: {234, 179, 8},
	models.GroupPurple: {147, 51, 234},
	models.GroupPink:   {236, 72, 153},
	models.GroupOrange: {249, 115, 22},
	models.GroupBrown:  {120, 53, 15},
	models.GroupGray:   {107, 114, 128},
}

type manifestColumn struct {
	title string
	width float64
}

var manifestColumns = []manifestColumn{
	{"#", 10},
	{"Group", 28},
	{"Name", 78},
	{"Document", 38},
	{"Type", 30},
	{"Seat", 22},
	{"Boarding", 71},
}

// RenderManifestPDF draws the manifest on landscape A4 pages.
func RenderManifestPDF(m models.Manifest) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Passenger Manifest", true)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, tr("PASSENGER MANIFEST"))
	pdf.Ln(10)

	h := m.Header
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Trip        : %s", safe(h.TripName, "-")),
		fmt.Sprintf("Destination : %s", safe(h.Destination, "-")),
		fmt.Sprintf("Departure   : %s", safe(h.DepartureDate, "-")),
		fmt.Sprintf("Vehicle     : %s (capacity %d)", safe(string(h.VehicleModel), "-"), h.Capacity),
		fmt.Sprintf("Passengers  : %d", h.PassengerCount),
		fmt.Sprintf("Generated   : %s", utils.FormatDateTime(h.GeneratedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 5, tr(s))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	drawHeaderRow := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range manifestColumns {
			pdf.CellFormat(col.width, 7, tr(col.title), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeaderRow()

	for _, row := range m.Rows {
		if pdf.GetY() > 190 {
			pdf.AddPage()
			drawHeaderRow()
		}
		if row.NewGroup {
			x, y := pdf.GetXY()
			pdf.SetDrawColor(60, 60, 60)
			pdf.SetLineWidth(0.6)
			pdf.Line(x, y, x+totalColumnWidth(), y)
			pdf.SetLineWidth(0.2)
			pdf.SetDrawColor(0, 0, 0)
		}
		cells := []string{
			fmt.Sprintf("%d", row.Index),
			row.GroupLabel,
			row.DisplayName,
			safe(row.DocumentID, "-"),
			row.TypeLabel,
			row.SeatDisplay,
			safe(row.BoardingLocation, "-"),
		}
		for i, col := range manifestColumns {
			text := cells[i]
			if i == 1 && row.GroupColor != "" {
				drawSwatch(pdf, row.GroupColor)
				text = "    " + fmt.Sprintf("%d", row.Passenger.Group())
			}
			pdf.CellFormat(col.width, 6, tr(truncate(text, col.width)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s_%s.pdf", safeFilenamePart(h.TripName), h.GeneratedAt.Format("20060102_1504"))
	return buf.Bytes(), filename, nil
}

func drawSwatch(pdf *gofpdf.Fpdf, color models.GroupColor) {
	c, ok := swatchColors[color]
	if !ok {
		return
	}
	x, y := pdf.GetXY()
	pdf.SetFillColor(c.r, c.g, c.b)
	pdf.Rect(x+1.5, y+1.5, 3, 3, "F")
}

func totalColumnWidth() float64 {
	w := 0.0
	for _, c := range manifestColumns {
		w += c.width
	}
	return w
}

// truncate keeps roughly what fits a 9pt cell of the given width.
func truncate(s string, width float64) string {
	limit := int(width / 1.9)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:limit])
	}
	return string(r[:limit-1]) + "…"
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
