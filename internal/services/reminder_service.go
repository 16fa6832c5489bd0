package services

import (
	"time"

	"go.uber.org/zap"

	"taskmaster/internal/domain"
	"taskmaster/internal/notify"
)

// reminderServiceImpl implements the ReminderService interface
type reminderServiceImpl struct {
	scheduler notify.Scheduler
	logger    *zap.Logger
}

// NewReminderService creates a new ReminderService instance.
func NewReminderService(scheduler notify.Scheduler, logger *zap.Logger) ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reminderServiceImpl{
		scheduler: scheduler,
		logger:    logger,
	}
}

// ScheduleReminders registers a due notification for every task with a
// complete due instant. Tasks with only a date, only a time, or neither
// are skipped; they can never be overdue and get no reminder.
func (r *reminderServiceImpl) ScheduleReminders(tasks []*domain.Task, now time.Time) int {
	scheduled := 0
	for _, task := range tasks {
		due, ok := task.DueInstant()
		if !ok {
			continue
		}

		req := notify.Request{
			Identifier: task.NotificationID(),
			Title:      task.Title,
			Body:       task.Description,
			At:         &due,
		}
		if task.Status(now) == domain.StatusOverdue {
			// Overdue reminders nag daily until the task is completed.
			req.Body = "Overdue: " + task.Description
			req.Repeats = true
		}

		if err := r.scheduler.Schedule(req); err != nil {
			r.logger.Warn("failed to schedule reminder",
				zap.String("identifier", req.Identifier),
				zap.Error(err),
			)
			continue
		}
		scheduled++
	}
	return scheduled
}

// CancelForTask removes the task's pending notification, if any.
func (r *reminderServiceImpl) CancelForTask(task *domain.Task) {
	if err := r.scheduler.Cancel(task.NotificationID()); err != nil {
		r.logger.Warn("failed to cancel reminder",
			zap.String("identifier", task.NotificationID()),
			zap.Error(err),
		)
	}
}
