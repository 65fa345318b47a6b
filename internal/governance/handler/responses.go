package handler

import (
	"time"

	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/governance/service"
	"pratyaksh/pkg/platform/httputil"
)

// DINCheckResponse is returned by GET /governance/check-din/{din}. Status is
// empty for DINs not in the registry.
type DINCheckResponse struct {
	DIN        string `json:"din"`
	Valid      bool   `json:"valid"`
	Registered bool   `json:"registered"`
	Status     string `json:"status,omitempty"`
}

type RiskResponse struct {
	Status    string `json:"status"`
	RiskScore int    `json:"risk_score"`
	Message   string `json:"message"`
}

type FlagResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReportResponse struct {
	RiskScore int            `json:"risk_score"`
	Flags     []FlagResponse `json:"flags"`
}

type DirectorResponse struct {
	ID                     string    `json:"id"`
	DIN                    string    `json:"din"`
	FullName               string    `json:"full_name"`
	Status                 string    `json:"status"`
	DisqualificationDate   string    `json:"disqualification_date,omitempty"`
	DisqualificationReason string    `json:"disqualification_reason,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type DirectorListResponse struct {
	Directors []DirectorResponse `json:"directors"`
}

type DisqualificationCheckResponse struct {
	Director      DirectorResponse `json:"director"`
	Risk          RiskResponse     `json:"risk"`
	StatusChanged bool             `json:"status_changed"`
}

type ResolutionResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AgendaText string    `json:"agenda_text"`
	RiskScore  int       `json:"risk_score"`
	RiskFlags  []string  `json:"risk_flags"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResolutionListResponse struct {
	Resolutions []ResolutionResponse `json:"resolutions"`
}

func toDINCheckResponse(c *service.DINCheck) DINCheckResponse {
	return DINCheckResponse{
		DIN:        c.DIN.String(),
		Valid:      true,
		Registered: c.Registered,
		Status:     string(c.Status),
	}
}

func toRiskResponse(r governance.DisqualificationRisk) RiskResponse {
	return RiskResponse{
		Status:    string(r.Status),
		RiskScore: r.RiskScore,
		Message:   r.Message,
	}
}

func toReportResponse(r governance.ResolutionRiskReport) ReportResponse {
	flags := make([]FlagResponse, 0, len(r.Flags))
	for _, f := range r.Flags {
		flags = append(flags, FlagResponse{Code: f.Code, Message: f.Message})
	}
	return ReportResponse{RiskScore: r.RiskScore, Flags: flags}
}

func toDirectorResponse(d *models.Director) DirectorResponse {
	resp := DirectorResponse{
		ID:                     d.ID.String(),
		DIN:                    d.DIN.String(),
		FullName:               d.FullName,
		Status:                 string(d.Status),
		DisqualificationReason: d.DisqualificationReason,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
	if d.DisqualificationDate != nil {
		resp.DisqualificationDate = httputil.FormatDate(*d.DisqualificationDate)
	}
	return resp
}

func toResolutionResponse(r *models.BoardResolution) ResolutionResponse {
	flags := r.RiskFlags
	if flags == nil {
		flags = []string{}
	}
	return ResolutionResponse{
		ID:         r.ID.String(),
		Title:      r.Title,
		AgendaText: r.AgendaText,
		RiskScore:  r.RiskScore,
		RiskFlags:  flags,
		CreatedAt:  r.CreatedAt,
	}
}
