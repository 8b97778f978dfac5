package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
)

// Status represents the lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a stored string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// Window is a position of a booking's interval relative to "now".
type Window string

const (
	WindowCurrent Window = "CURRENT"
	WindowPast    Window = "PAST"
	WindowFuture  Window = "FUTURE"
)

// Contains reports whether [start, end] falls into the window at now.
// The three windows never overlap.
func (w Window) Contains(start, end, now time.Time) bool {
	switch w {
	case WindowCurrent:
		return start.Before(now) && end.After(now)
	case WindowPast:
		return end.Before(now)
	case WindowFuture:
		return start.After(now)
	}
	return false
}

// View selects bookings for listing. Exactly one dimension is filtered:
// nothing (ALL), lifecycle status, or temporal window. The zero value is ALL.
type View struct {
	status Status
	window Window
}

// ViewAll selects every booking.
func ViewAll() View { return View{} }

// ViewByStatus selects bookings in the given lifecycle status, ignoring time.
func ViewByStatus(s Status) View { return View{status: s} }

// ViewByWindow selects bookings in the given temporal window, ignoring status.
func ViewByWindow(w Window) View { return View{window: w} }

// IsAll reports whether the view applies no filter.
func (v View) IsAll() bool { return v.status == "" && v.window == "" }

// Status returns the status filter, if this is a status view.
func (v View) Status() (Status, bool) { return v.status, v.status != "" }

// Window returns the window filter, if this is a window view.
func (v View) Window() (Window, bool) { return v.window, v.window != "" }

// Matches reports whether b is selected by the view at now.
func (v View) Matches(b *Booking, now time.Time) bool {
	if s, ok := v.Status(); ok {
		return b.Status() == s
	}
	if w, ok := v.Window(); ok {
		return w.Contains(b.Start(), b.End(), now)
	}
	return true
}

// String returns the state token the view was parsed from.
func (v View) String() string {
	if s, ok := v.Status(); ok {
		return string(s)
	}
	if w, ok := v.Window(); ok {
		return string(w)
	}
	return "ALL"
}

// ParseState maps a state token (ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED)
// to a View. Matching is case-insensitive and an empty token means ALL.
func ParseState(token string) (View, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "", "ALL":
		return ViewAll(), nil
	case string(WindowCurrent):
		return ViewByWindow(WindowCurrent), nil
	case string(WindowPast):
		return ViewByWindow(WindowPast), nil
	case string(WindowFuture):
		return ViewByWindow(WindowFuture), nil
	case string(StatusWaiting):
		return ViewByStatus(StatusWaiting), nil
	case string(StatusRejected):
		return ViewByStatus(StatusRejected), nil
	}
	return View{}, domain.NewValidationError("Unknown state: " + token)
}
