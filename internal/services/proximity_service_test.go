package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/domain"
	"taskmaster/internal/notify"
)

// Westminster Bridge, London.
const (
	userLat = 51.5007
	userLng = 0.1246
)

func TestHaversineMeters(t *testing.T) {
	// Same point.
	assert.InDelta(t, 0, haversineMeters(userLat, userLng, userLat, userLng), 0.01)

	// One degree of latitude is roughly 111 km.
	d := haversineMeters(51.0, 0.0, 52.0, 0.0)
	assert.InDelta(t, 111195, d, 100)
}

func TestProximity_FindNearby_Threshold(t *testing.T) {
	scheduler := notify.NewMemoryScheduler(nil)
	svc := NewProximityService(scheduler, 100, time.Second, nil)

	// Offsets of ~0.0008 and ~0.00095 degrees latitude are roughly 89
	// and 106 meters.
	inside := &domain.Task{UUID: "in", Title: "inside", Latitude: userLat + 0.0008, Longitude: userLng}
	outside := &domain.Task{UUID: "out", Title: "outside", Latitude: userLat + 0.00095, Longitude: userLng}

	nearby := svc.FindNearby([]*domain.Task{inside, outside}, userLat, userLng, 100)
	require.Len(t, nearby, 1)
	assert.Equal(t, "inside", nearby[0].Title)
}

func TestProximity_FindNearby_SentinelExcluded(t *testing.T) {
	scheduler := notify.NewMemoryScheduler(nil)
	svc := NewProximityService(scheduler, 100, time.Second, nil)

	// A task at the unset sentinel is never nearby, even for a user
	// standing at (0, 0).
	unset := &domain.Task{UUID: "u", Title: "unset"}
	nearby := svc.FindNearby([]*domain.Task{unset}, 0, 0, 100)
	assert.Empty(t, nearby)

	// Partial coordinates are also excluded.
	partial := &domain.Task{UUID: "p", Title: "partial", Latitude: userLat}
	nearby = svc.FindNearby([]*domain.Task{partial}, userLat, 0, 100)
	assert.Empty(t, nearby)
}

func TestProximity_NotifyNearby_SchedulesPerTask(t *testing.T) {
	scheduler := notify.NewMemoryScheduler(nil)
	svc := NewProximityService(scheduler, 100, time.Second, nil)

	task := &domain.Task{UUID: "abc", Title: "Pick up keys", Latitude: userLat, Longitude: userLng}
	far := &domain.Task{UUID: "far", Title: "Elsewhere", Latitude: userLat + 1, Longitude: userLng}

	nearby := svc.NotifyNearby(context.Background(), []*domain.Task{task, far}, userLat, userLng)
	require.Len(t, nearby, 1)

	req, ok := scheduler.Pending("task-abc")
	require.True(t, ok)
	assert.Equal(t, "You're near a task!", req.Title)
	assert.Equal(t, "Reminder: Pick up keys is near you.", req.Body)
	assert.Equal(t, time.Second, req.Interval)
	assert.False(t, req.Repeats)

	_, ok = scheduler.Pending("task-far")
	assert.False(t, ok)
}

func TestProximity_NotifyNearby_RefiresOnEveryCheck(t *testing.T) {
	scheduler := notify.NewMemoryScheduler(nil)
	svc := NewProximityService(scheduler, 100, time.Second, nil)

	task := &domain.Task{UUID: "abc", Title: "Still here", Latitude: userLat, Longitude: userLng}

	// No cooldown: a task still in range is re-requested each time, and
	// the identifier keeps the pending set at one entry.
	for i := 0; i < 3; i++ {
		nearby := svc.NotifyNearby(context.Background(), []*domain.Task{task}, userLat, userLng)
		require.Len(t, nearby, 1)
	}
	assert.Equal(t, 1, scheduler.PendingCount())
}
