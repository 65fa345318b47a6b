package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pratyaksh/internal/governance"
	dErrors "pratyaksh/pkg/domain-errors"
)

const (
	maxTitleLength  = 300
	maxAgendaLength = 64 * 1024
)

// BoardResolution is a screened board agenda item.
type BoardResolution struct {
	ID         uuid.UUID
	Title      string
	AgendaText string
	RiskScore  int
	RiskFlags  []string
	CreatedAt  time.Time
}

// NewBoardResolution validates the text and attaches the screening report.
func NewBoardResolution(title, agenda string, report governance.ResolutionRiskReport, now time.Time) (*BoardResolution, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(title) > maxTitleLength {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	if err := ValidateAgenda(agenda); err != nil {
		return nil, err
	}
	return &BoardResolution{
		ID:         uuid.New(),
		Title:      title,
		AgendaText: agenda,
		RiskScore:  report.RiskScore,
		RiskFlags:  report.FlagCodes(),
		CreatedAt:  now,
	}, nil
}

// ValidateAgenda checks agenda text bounds.
func ValidateAgenda(agenda string) error {
	if strings.TrimSpace(agenda) == "" {
		return dErrors.New(dErrors.CodeValidation, "agenda_text is required")
	}
	if len(agenda) > maxAgendaLength {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("agenda_text must be at most %d bytes", maxAgendaLength))
	}
	return nil
}
