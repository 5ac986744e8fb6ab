package kiosk

import "github.com/akio-byte/aki-eduro/internal/scoring"

// Submission is one visitor's collected input, consumed once by Generate.
type Submission struct {
	Name         string
	Email        string
	Score        int
	PhotoDataURL string
}

// BadgeStatus distinguishes "not attempted" from a failed or confirmed
// issuance. The UI messaging depends on all three variants.
type BadgeStatus string

const (
	BadgeSuccess BadgeStatus = "success"
	BadgeError   BadgeStatus = "error"
	BadgeSkipped BadgeStatus = "skipped"
)

// GenerationResult is the assembled output of one submission. It is built
// once and never mutated.
type GenerationResult struct {
	ID              string       `json:"id"`
	Score           int          `json:"score"`
	Level           scoring.Tier `json:"level"`
	ElfSummary      string       `json:"elfSummary"`
	ElfText         string       `json:"elfText"`
	ElfImageDataURL string       `json:"elfImageDataUrl"`
	BadgeImageURL   string       `json:"badgeImageUrl"`
	PDFDataURI      string       `json:"pdfDataUri,omitempty"`
	BadgeStatus     BadgeStatus  `json:"badgeStatus"`
}
