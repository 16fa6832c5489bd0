package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"taskmaster/internal/domain"
	"taskmaster/internal/notify"
)

const earthRadiusMeters = 6371000.0

// proximityServiceImpl implements the ProximityService interface
type proximityServiceImpl struct {
	scheduler       notify.Scheduler
	thresholdMeters float64
	triggerDelay    time.Duration
	logger          *zap.Logger
}

// NewProximityService creates a new ProximityService instance.
func NewProximityService(scheduler notify.Scheduler, thresholdMeters float64, triggerDelay time.Duration, logger *zap.Logger) ProximityService {
	if thresholdMeters <= 0 {
		thresholdMeters = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &proximityServiceImpl{
		scheduler:       scheduler,
		thresholdMeters: thresholdMeters,
		triggerDelay:    triggerDelay,
		logger:          logger,
	}
}

// FindNearby returns the tasks within thresholdMeters of the position.
func (p *proximityServiceImpl) FindNearby(tasks []*domain.Task, lat, lng, thresholdMeters float64) []*domain.Task {
	nearby := make([]*domain.Task, 0)
	for _, task := range tasks {
		// (0,0) is the unset coordinate sentinel, never a real position.
		if !task.HasCoordinates() {
			continue
		}
		if haversineMeters(lat, lng, task.Latitude, task.Longitude) < thresholdMeters {
			nearby = append(nearby, task)
		}
	}
	return nearby
}

// NotifyNearby requests one notification per task in range. Every
// location update re-fires for tasks still in range; there is no
// cooldown.
func (p *proximityServiceImpl) NotifyNearby(ctx context.Context, tasks []*domain.Task, lat, lng float64) []*domain.Task {
	nearby := p.FindNearby(tasks, lat, lng, p.thresholdMeters)

	for _, task := range nearby {
		req := notify.Request{
			Identifier: task.NotificationID(),
			Title:      "You're near a task!",
			Body:       fmt.Sprintf("Reminder: %s is near you.", task.Title),
			Interval:   p.triggerDelay,
		}
		if err := p.scheduler.Schedule(req); err != nil {
			// Fire-and-forget: delivery failures never block the caller.
			p.logger.Warn("failed to schedule nearby notification",
				zap.String("identifier", req.Identifier),
				zap.Error(err),
			)
		}
	}

	return nearby
}

// haversineMeters computes the great-circle distance between two
// coordinates.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
