package domain

// SortCriteria selects how a task collection is ordered before grouping.
type SortCriteria string

const (
	SortByDueDate  SortCriteria = "duedate"
	SortByPriority SortCriteria = "priority"
	SortByCategory SortCriteria = "category"
)

// ParseSortCriteria parses a sort criteria name. Unknown names fall back
// to due-date ordering, the application default.
func ParseSortCriteria(s string) SortCriteria {
	switch SortCriteria(s) {
	case SortByPriority:
		return SortByPriority
	case SortByCategory:
		return SortByCategory
	default:
		return SortByDueDate
	}
}

// GroupedTaskView is the presentation-ready grouping of a task
// collection: tasks bucketed by category plus the section order. It is
// recomputed on every fetch, filter, or sort change and never persisted.
type GroupedTaskView struct {
	// Sections maps a category name to the tasks in that category, in
	// the order produced by the applied sort. Uncategorized tasks live
	// under the empty-string key.
	Sections map[string][]*Task

	// Order holds the distinct section keys sorted lexicographically
	// ascending. This ordering is independent of the sort criteria.
	Order []string
}

// IsEmpty reports whether the view has no sections to display.
func (v *GroupedTaskView) IsEmpty() bool {
	return len(v.Order) == 0
}

// TaskCount returns the total number of tasks across all sections.
func (v *GroupedTaskView) TaskCount() int {
	count := 0
	for _, tasks := range v.Sections {
		count += len(tasks)
	}
	return count
}
