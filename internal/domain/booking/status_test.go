package booking

import (
	"testing"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/item"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	cases := map[string]View{
		"":         ViewAll(),
		"ALL":      ViewAll(),
		"all":      ViewAll(),
		"CURRENT":  ViewByWindow(WindowCurrent),
		"past":     ViewByWindow(WindowPast),
		"Future":   ViewByWindow(WindowFuture),
		"WAITING":  ViewByStatus(StatusWaiting),
		"REJECTED": ViewByStatus(StatusRejected),
	}
	for token, want := range cases {
		got, err := ParseState(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}
}

func TestParseState_UnknownTokenIsInvalidInput(t *testing.T) {
	for _, token := range []string{"APPROVED", "UNSUPPORTED_STATUS", "ALLL"} {
		_, err := ParseState(token)
		require.Error(t, err, token)
		assert.True(t, domain.IsValidation(err), token)
	}
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "ALL", ViewAll().String())
	assert.Equal(t, "PAST", ViewByWindow(WindowPast).String())
	assert.Equal(t, "WAITING", ViewByStatus(StatusWaiting).String())
}

func sampleBooking(t *testing.T, start, end time.Time, status Status) *Booking {
	t.Helper()
	owner := user.Reconstruct(1, "owner", "owner@example.com")
	booker := user.Reconstruct(2, "booker", "booker@example.com")
	it := item.Reconstruct(10, "drill", "cordless drill", true, owner, nil)
	return ReconstructBooking(100, start, end, it, booker, status)
}

func TestWindows_PartitionAll(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := time.Hour
	intervals := [][2]time.Time{
		{now.Add(-3 * h), now.Add(-2 * h)},
		{now.Add(-1 * h), now.Add(1 * h)},
		{now.Add(1 * h), now.Add(2 * h)},
		{now.Add(-48 * h), now.Add(-1 * time.Nanosecond)},
		{now.Add(time.Nanosecond), now.Add(48 * h)},
	}
	windows := []Window{WindowCurrent, WindowPast, WindowFuture}

	for _, iv := range intervals {
		for _, status := range []Status{StatusWaiting, StatusApproved, StatusRejected} {
			b := sampleBooking(t, iv[0], iv[1], status)
			require.True(t, ViewAll().Matches(b, now))

			hits := 0
			for _, w := range windows {
				if ViewByWindow(w).Matches(b, now) {
					hits++
				}
			}
			assert.Equal(t, 1, hits, "interval %v-%v must fall into exactly one window", iv[0], iv[1])
		}
	}
}

func TestStatusViews_IgnoreTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := sampleBooking(t, now.Add(5*time.Hour), now.Add(6*time.Hour), StatusRejected)
	past := sampleBooking(t, now.Add(-6*time.Hour), now.Add(-5*time.Hour), StatusRejected)

	rejected := ViewByStatus(StatusRejected)
	assert.True(t, rejected.Matches(future, now))
	assert.True(t, rejected.Matches(past, now))
	assert.True(t, ViewByWindow(WindowFuture).Matches(future, now))
	assert.False(t, ViewByStatus(StatusWaiting).Matches(future, now))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseStatus("approved")
	assert.Error(t, err)
}
