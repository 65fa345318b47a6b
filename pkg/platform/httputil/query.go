package httputil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	dErrors "pratyaksh/pkg/domain-errors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// QueryInt parses an integer query parameter. Missing or empty values yield
// def.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// RequiredQueryInt parses an integer query parameter that must be present.
func RequiredQueryInt(r *http.Request, name string) (int, error) {
	if strings.TrimSpace(r.URL.Query().Get(name)) == "" {
		return 0, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is required", name))
	}
	return QueryInt(r, name, 0)
}

// QueryDate parses a YYYY-MM-DD query parameter. ok is false when the
// parameter is absent.
func QueryDate(r *http.Request, name string) (t time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name))
	}
	return t, true, nil
}

// RequiredQueryDate parses a YYYY-MM-DD query parameter that must be present.
func RequiredQueryDate(r *http.Request, name string) (time.Time, error) {
	t, ok, err := QueryDate(r, name)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is required", name))
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
