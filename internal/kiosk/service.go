package kiosk

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akio-byte/aki-eduro/internal/certificate"
	"github.com/akio-byte/aki-eduro/internal/gemini"
	"github.com/akio-byte/aki-eduro/internal/scoring"
	"github.com/akio-byte/aki-eduro/internal/shared/metrics"
	"github.com/akio-byte/aki-eduro/internal/shared/telemetry"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrComposition  = errors.New("certificate composition failed")
)

// TextGenerator produces the long-form elf assessment.
type TextGenerator interface {
	GenerateDescription(ctx context.Context, name string, score int, level string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// ImageTransformer turns a captured photo into the stylized portrait.
type ImageTransformer interface {
	EditImage(ctx context.Context, imageBase64, prompt string) (string, error)
	Configured() bool
}

// BadgeIssuer sends the digital badge and serves its icon.
type BadgeIssuer interface {
	Issue(ctx context.Context, email, firstName string) error
	FetchIcon(ctx context.Context) ([]byte, error)
	IconURL() string
	Configured() bool
}

// Composer renders the final certificate document.
type Composer interface {
	Compose(in certificate.Input) (string, error)
}

// Service coordinates one submission: three independent generation branches
// joined before the certificate is composed.
type Service struct {
	Text     TextGenerator
	Image    ImageTransformer
	Badge    BadgeIssuer
	Composer Composer
}

// Generate runs the full submission pipeline. The three external branches
// never cancel each other and absorb their own failures into fallbacks; only
// a failed composition aborts the submission. The returned result is always
// complete, never partial.
func (s *Service) Generate(ctx context.Context, sub Submission) (GenerationResult, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return GenerationResult{}, ErrInvalidInput
	}
	if s.Text == nil || s.Image == nil || s.Badge == nil || s.Composer == nil {
		return GenerationResult{}, errors.New("missing dependencies")
	}

	start := time.Now()
	metrics.IncGenerationStarted()

	level := scoring.LevelFor(sub.Score)
	summary := scoring.SummaryFor(sub.Name, level, sub.Score)
	shouldIssueBadge := strings.TrimSpace(sub.Email) != ""

	var (
		elfText     string
		elfImage    string
		badgeIssued bool
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		elfText = s.generateText(ctx, sub, level)
	}()

	go func() {
		defer wg.Done()
		elfImage = s.transformPhoto(ctx, sub.PhotoDataURL)
	}()

	go func() {
		defer wg.Done()
		if !shouldIssueBadge {
			return
		}
		badgeIssued = s.issueBadge(ctx, sub)
	}()

	wg.Wait()

	badgeStatus := BadgeSkipped
	if shouldIssueBadge {
		badgeStatus = BadgeError
		if badgeIssued {
			badgeStatus = BadgeSuccess
		}
	}
	metrics.IncBadgeOutcome(string(badgeStatus))

	icon, err := s.Badge.FetchIcon(ctx)
	if err != nil {
		telemetry.Error("kiosk.badge_icon_failed", map[string]any{"error": err.Error()})
		icon = nil
	}

	pdfDataURI, err := s.Composer.Compose(certificate.Input{
		Name:            sub.Name,
		Level:           string(level),
		Score:           sub.Score,
		Summary:         summary,
		Body:            elfText,
		PortraitDataURL: elfImage,
		BadgeIcon:       icon,
	})
	if err != nil {
		telemetry.Error("kiosk.compose_failed", map[string]any{"error": err.Error()})
		metrics.IncGenerationFailed()
		return GenerationResult{}, ErrComposition
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDuration(time.Since(start).Seconds())

	return GenerationResult{
		ID:              uuid.NewString(),
		Score:           sub.Score,
		Level:           level,
		ElfSummary:      summary,
		ElfText:         elfText,
		ElfImageDataURL: elfImage,
		BadgeImageURL:   s.Badge.IconURL(),
		PDFDataURI:      pdfDataURI,
		BadgeStatus:     badgeStatus,
	}, nil
}

// generateText asks for the elf assessment, falling back to the canned
// sentence on any failure.
func (s *Service) generateText(ctx context.Context, sub Submission, level scoring.Tier) string {
	text, err := s.Text.GenerateDescription(ctx, sub.Name, sub.Score, string(level))
	if err != nil {
		telemetry.Error("kiosk.text_generation_failed", map[string]any{"error": err.Error()})
		return gemini.FallbackDescription
	}
	return text
}

// transformPhoto requests the elf portrait. No photo resolves immediately to
// the absent value; a failed edit falls back to the original photo unchanged.
func (s *Service) transformPhoto(ctx context.Context, photoDataURL string) string {
	if photoDataURL == "" {
		return ""
	}
	edited, err := s.Image.EditImage(ctx, StripDataURIPrefix(photoDataURL), gemini.DefaultEditPrompt)
	if err != nil {
		telemetry.Error("kiosk.image_transform_failed", map[string]any{"error": err.Error()})
		return photoDataURL
	}
	return edited
}

// issueBadge collapses both steps of the issuance protocol to one boolean.
func (s *Service) issueBadge(ctx context.Context, sub Submission) bool {
	firstName := scoring.FirstName(sub.Name)
	if firstName == "" {
		firstName = sub.Name
	}
	if err := s.Badge.Issue(ctx, strings.TrimSpace(sub.Email), firstName); err != nil {
		telemetry.Error("kiosk.badge_issue_failed", map[string]any{"error": err.Error()})
		return false
	}
	return true
}

// StripDataURIPrefix drops a "data:...;base64," header if present.
func StripDataURIPrefix(s string) string {
	if strings.HasPrefix(s, "data:") {
		if comma := strings.Index(s, ","); comma >= 0 {
			return s[comma+1:]
		}
	}
	return s
}
