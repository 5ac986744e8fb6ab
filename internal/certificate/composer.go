// Package certificate lays out the downloadable kiosk certificate PDF.
package certificate

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-pdf/fpdf"
)

const (
	marginLeft       = 50.0
	portraitTop      = 230.0
	portraitMaxWidth = 300.0
	badgeLeft        = 380.0
	badgeBoxSize     = 120.0
	bodyMaxWidth     = 500.0
	bodyLineHeight   = 18.0
)

// Input carries everything the certificate renders.
type Input struct {
	Name            string
	Level           string
	Score           int
	Summary         string
	Body            string
	PortraitDataURL string
	BadgeIcon       []byte
}

// Composer produces the A4 certificate as a self-contained data URI.
type Composer struct {
	OrgName      string
	Title        string
	BadgeHeading string
	BadgeCaption string
	Now          func() time.Time
}

// NewComposer returns a composer with the kiosk defaults.
func NewComposer() *Composer {
	return &Composer{
		OrgName:      "Eduro Pikkujoulut",
		Title:        "Joulun Osaaja -todistus",
		BadgeHeading: "Myönnetty merkki:",
		BadgeCaption: "Jouluosaaja",
		Now:          time.Now,
	}
}

// Compose renders the certificate and returns it as a PDF data URI.
// A portrait that cannot be decoded degrades to a placeholder note; only a
// broken document assembly is an error.
func (c *Composer) Compose(in Input) (string, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()

	red := [3]int{214, 40, 40}
	dark := [3]int{51, 51, 51}

	// Header block: organization, title, date.
	pdf.SetTextColor(dark[0], dark[1], dark[2])
	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(marginLeft, 60, tr(c.OrgName))

	pdf.SetFont("Helvetica", "", 12)
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	pdf.Text(pageW-150, 60, now().Format("2.1.2006"))

	pdf.SetTextColor(red[0], red[1], red[2])
	pdf.SetFont("Helvetica", "B", 30)
	pdf.Text(marginLeft, 100, tr(c.Title))

	// Identity block.
	pdf.SetTextColor(dark[0], dark[1], dark[2])
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginLeft, 160, tr("Nimi: "+Sanitize(in.Name)))

	pdf.SetTextColor(red[0], red[1], red[2])
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(marginLeft, 190, tr("Titteli: "+Sanitize(in.Level)))

	// Portrait region: scaled to a maximum width, aspect preserved.
	portraitBottom := 250.0
	if img, ok := decodePortrait(in.PortraitDataURL); ok {
		scaled := portraitMaxWidth * float64(img.height) / float64(img.width)
		pdf.RegisterImageOptionsReader("portrait", fpdf.ImageOptions{ImageType: img.pdfType}, bytes.NewReader(img.data))
		pdf.ImageOptions("portrait", marginLeft, portraitTop, portraitMaxWidth, scaled, false, fpdf.ImageOptions{ImageType: img.pdfType}, 0, "")
		portraitBottom = portraitTop + scaled
	} else {
		pdf.SetTextColor(dark[0], dark[1], dark[2])
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(marginLeft, 300, tr("(Kuvaa ei voitu liittää)"))
	}

	// Badge region: icon fitted to a fixed box plus caption.
	if icon, ok := decodeBadgeIcon(in.BadgeIcon); ok {
		scale := badgeBoxSize / float64(icon.width)
		if h := badgeBoxSize / float64(icon.height); h < scale {
			scale = h
		}
		w := float64(icon.width) * scale
		h := float64(icon.height) * scale
		pdf.RegisterImageOptionsReader("badge", fpdf.ImageOptions{ImageType: icon.pdfType}, bytes.NewReader(icon.data))
		pdf.ImageOptions("badge", badgeLeft, 350-h, w, h, false, fpdf.ImageOptions{ImageType: icon.pdfType}, 0, "")

		pdf.SetTextColor(dark[0], dark[1], dark[2])
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(badgeLeft, 365, tr(c.BadgeHeading))
		pdf.SetTextColor(red[0], red[1], red[2])
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(badgeLeft, 380, tr(c.BadgeCaption))
	}

	// Summary line, emphasized.
	textTop := portraitBottom + 40
	pdf.SetTextColor(red[0], red[1], red[2])
	pdf.SetFont("Helvetica", "I", 14)
	pdf.Text(marginLeft, textTop, tr(Sanitize(in.Summary)))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginLeft, textTop+30, tr("Tonttuanalyysi:"))

	// Long-form text, greedily wrapped against the font metrics.
	pdf.SetTextColor(dark[0], dark[1], dark[2])
	pdf.SetFont("Helvetica", "", 12)
	lines := wrapText(Sanitize(in.Body), bodyMaxWidth, func(s string) float64 {
		return pdf.GetStringWidth(tr(s))
	})
	y := textTop + 55
	for _, line := range lines {
		pdf.Text(marginLeft, y, tr(line))
		y += bodyLineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("certificate output: %w", err)
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

type decodedImage struct {
	data    []byte
	pdfType string
	width   int
	height  int
}

// decodePortrait turns a (data-URI or bare base64) portrait into validated
// image bytes plus the PDF image type. Format is sniffed from signature
// bytes first, then content detection, then the declared mime string.
func decodePortrait(dataURL string) (decodedImage, bool) {
	raw, declaredMime, err := decodeDataURL(dataURL)
	if err != nil || len(raw) == 0 {
		return decodedImage{}, false
	}
	pdfType := sniffImageType(raw, declaredMime)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return decodedImage{}, false
	}
	return decodedImage{data: raw, pdfType: pdfType, width: cfg.Width, height: cfg.Height}, true
}

func decodeBadgeIcon(raw []byte) (decodedImage, bool) {
	if len(raw) == 0 {
		return decodedImage{}, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return decodedImage{}, false
	}
	return decodedImage{data: raw, pdfType: sniffImageType(raw, ""), width: cfg.Width, height: cfg.Height}, true
}

func decodeDataURL(dataURL string) ([]byte, string, error) {
	s := strings.TrimSpace(dataURL)
	if s == "" {
		return nil, "", errors.New("empty image")
	}
	declared := ""
	if strings.HasPrefix(s, "data:") {
		comma := strings.Index(s, ",")
		if comma < 0 {
			return nil, "", errors.New("malformed data URI")
		}
		header := s[len("data:"):comma]
		declared = strings.TrimSuffix(header, ";base64")
		s = s[comma+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", err
	}
	return raw, declared, nil
}

// sniffImageType picks the PDF embed type from magic bytes, falling back to
// content detection and finally the declared mime type.
func sniffImageType(raw []byte, declaredMime string) string {
	if len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xD8 {
		return "JPG"
	}
	if len(raw) >= 4 && raw[0] == 0x89 && raw[1] == 'P' && raw[2] == 'N' && raw[3] == 'G' {
		return "PNG"
	}
	switch mimetype.Detect(raw).String() {
	case "image/jpeg":
		return "JPG"
	case "image/png":
		return "PNG"
	}
	if strings.Contains(declaredMime, "jpeg") || strings.Contains(declaredMime, "jpg") {
		return "JPG"
	}
	return "PNG"
}
