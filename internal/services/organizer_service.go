package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"taskmaster/internal/domain"
)

// organizerServiceImpl implements the OrganizerService interface
type organizerServiceImpl struct {
	dateFormat string
}

// NewOrganizerService creates a new OrganizerService instance. The date
// format is used when matching search queries against due dates.
func NewOrganizerService(dateFormat string) OrganizerService {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}
	return &organizerServiceImpl{
		dateFormat: dateFormat,
	}
}

// Filter narrows the working set by a case-insensitive substring match.
func (o *organizerServiceImpl) Filter(tasks []*domain.Task, query string, now time.Time) []*domain.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tasks
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if o.matches(task, query) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// matches checks one task against a lowercased query.
func (o *organizerServiceImpl) matches(task *domain.Task, query string) bool {
	if strings.Contains(strings.ToLower(task.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Category), query) {
		return true
	}
	if task.DueDate != nil && strings.Contains(task.DueDate.Format(o.dateFormat), query) {
		return true
	}
	// Priority matches both the raw code and the display name.
	if strings.Contains(strconv.Itoa(int(task.Priority)), query) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Priority.String()), query) {
		return true
	}
	return false
}

// Organize sorts and groups the collection for display.
func (o *organizerServiceImpl) Organize(tasks []*domain.Task, criteria domain.SortCriteria, now time.Time) *domain.GroupedTaskView {
	// Sort a copy so callers keep their original order.
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)

	switch criteria {
	case domain.SortByPriority:
		// Raw code ascending: None(0) sorts before High(1).
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority < sorted[j].Priority
		})
	case domain.SortByCategory:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Category < sorted[j].Category
		})
	default:
		// Due date ascending; a task with no due date sorts as if due now.
		sort.SliceStable(sorted, func(i, j int) bool {
			return dueOrNow(sorted[i], now).Before(dueOrNow(sorted[j], now))
		})
	}

	// Bucket by category, preserving the just-applied sort within each
	// section. Uncategorized tasks go under the empty-string key.
	sections := make(map[string][]*domain.Task)
	for _, task := range sorted {
		sections[task.Category] = append(sections[task.Category], task)
	}

	order := make([]string, 0, len(sections))
	for category := range sections {
		order = append(order, category)
	}
	sort.Strings(order)

	return &domain.GroupedTaskView{
		Sections: sections,
		Order:    order,
	}
}

// dueOrNow returns the task's due date, falling back to the evaluation
// instant when none is set.
func dueOrNow(task *domain.Task, now time.Time) time.Time {
	if task.DueDate == nil {
		return now
	}
	return *task.DueDate
}
