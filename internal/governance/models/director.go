package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pratyaksh/internal/governance"
	dErrors "pratyaksh/pkg/domain-errors"
)

const maxNameLength = 200

// Director is a registered director of a client company.
type Director struct {
	ID                     uuid.UUID
	DIN                    governance.DIN
	FullName               string
	Status                 governance.DINStatus
	DisqualificationDate   *time.Time
	DisqualificationReason string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewDirector creates an APPROVED director.
func NewDirector(din governance.DIN, fullName string, now time.Time) (*Director, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "full_name is required")
	}
	if len(fullName) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("full_name must be at most %d characters", maxNameLength))
	}
	return &Director{
		ID:        uuid.New(),
		DIN:       din,
		FullName:  fullName,
		Status:    governance.DINApproved,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeStatus moves the director to next. Disqualification records the
// date and reason; reinstatement clears them. DEACTIVATED is terminal.
func (d *Director) ChangeStatus(next governance.DINStatus, reason string, now time.Time) error {
	if !d.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("director %s cannot move from %s to %s", d.DIN, d.Status, next))
	}

	switch next {
	case governance.DINDisqualified:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return dErrors.New(dErrors.CodeValidation, "reason is required to disqualify a director")
		}
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		d.DisqualificationDate = &day
		d.DisqualificationReason = reason
	case governance.DINApproved:
		d.DisqualificationDate = nil
		d.DisqualificationReason = ""
	}
	d.Status = next
	d.UpdatedAt = now
	return nil
}
