package models

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "pratyaksh/pkg/domain-errors"
)

const (
	hashLength           = 64
	maxTypeLength        = 64
	maxDescriptionLength = 2000
	maxURLLength         = 2048
)

// Log is one piece of field evidence captured by an operator. Only the
// metadata and SHA-256 digest are kept; the file itself lives elsewhere.
type Log struct {
	ID           uuid.UUID
	UserID       string
	EvidenceType string
	Description  string
	FileURL      string
	FileHash     string
	Latitude     *float64
	Longitude    *float64
	CapturedAt   time.Time
}

// Capture holds the caller-supplied fields of a new log.
type Capture struct {
	EvidenceType string
	Description  string
	FileURL      string
	FileHash     string
	Latitude     *float64
	Longitude    *float64
}

// NewLog validates c and stamps it with userID and now.
func NewLog(userID string, c Capture, now time.Time) (*Log, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "evidence requires an authenticated user")
	}
	c.EvidenceType = strings.ToUpper(strings.TrimSpace(c.EvidenceType))
	c.Description = strings.TrimSpace(c.Description)
	c.FileURL = strings.TrimSpace(c.FileURL)
	c.FileHash = strings.ToLower(strings.TrimSpace(c.FileHash))

	switch {
	case c.EvidenceType == "":
		return nil, dErrors.New(dErrors.CodeValidation, "evidence_type is required")
	case len(c.EvidenceType) > maxTypeLength:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("evidence_type must be at most %d characters", maxTypeLength))
	case len(c.Description) > maxDescriptionLength:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	if err := validateHash(c.FileHash); err != nil {
		return nil, err
	}
	if err := validateURL(c.FileURL); err != nil {
		return nil, err
	}
	if err := validateLocation(c.Latitude, c.Longitude); err != nil {
		return nil, err
	}

	return &Log{
		ID:           uuid.New(),
		UserID:       userID,
		EvidenceType: c.EvidenceType,
		Description:  c.Description,
		FileURL:      c.FileURL,
		FileHash:     c.FileHash,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		CapturedAt:   now,
	}, nil
}

func validateHash(h string) error {
	if h == "" {
		return dErrors.New(dErrors.CodeValidation, "file_hash is required")
	}
	if len(h) != hashLength {
		return dErrors.New(dErrors.CodeValidation, "file_hash must be a hex SHA-256 digest of 64 characters")
	}
	if _, err := hex.DecodeString(h); err != nil {
		return dErrors.New(dErrors.CodeValidation, "file_hash must be hexadecimal")
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	if len(raw) > maxURLLength {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("file_url must be at most %d characters", maxURLLength))
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http" && u.Scheme != "s3") {
		return dErrors.New(dErrors.CodeValidation, "file_url must be an absolute http, https or s3 URL")
	}
	return nil
}

// validateLocation requires both coordinates or neither.
func validateLocation(lat, long *float64) error {
	if (lat == nil) != (long == nil) {
		return dErrors.New(dErrors.CodeValidation, "latitude and longitude must be given together")
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 {
		return dErrors.New(dErrors.CodeValidation, "latitude must be within [-90, 90]")
	}
	if *long < -180 || *long > 180 {
		return dErrors.New(dErrors.CodeValidation, "longitude must be within [-180, 180]")
	}
	return nil
}
