package testutil

import (
	"net/http"
	"time"

	"pratyaksh/pkg/requestcontext"
)

// WithSubject marks the request as authenticated for subject, the way the
// auth middleware would.
func WithSubject(req *http.Request, subject string) *http.Request {
	return req.WithContext(requestcontext.WithSubject(req.Context(), subject))
}

// WithTime pins the request-scoped clock.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
