package domain

// Summary holds the aggregate counters derived from a task list.
type Summary struct {
	Total      int            `json:"total" dynamodbav:"total"`
	Assigned   int            `json:"assigned" dynamodbav:"assigned"`
	InProgress int            `json:"inProgress" dynamodbav:"inProgress"`
	Completed  int            `json:"completed" dynamodbav:"completed"`
	ByCategory map[string]int `json:"byCategory" dynamodbav:"byCategory"`
}

// Summarize computes status and category counters for the given tasks.
// A task whose status is absent or unrecognised contributes to Total
// and its category counter but to none of the three status counters.
// Unknown or absent categories count under Other. ByCategory always
// carries all four category names, zero-filled for an empty input.
func Summarize(tasks []Task) Summary {
	summary := Summary{
		Total:      len(tasks),
		ByCategory: make(map[string]int, len(Categories)),
	}
	for _, name := range Categories {
		summary.ByCategory[name] = 0
	}

	for _, task := range tasks {
		switch task.Status {
		case StatusAssigned:
			summary.Assigned++
		case StatusInProgress:
			summary.InProgress++
		case StatusCompleted:
			summary.Completed++
		}

		if _, ok := summary.ByCategory[task.Category]; ok {
			summary.ByCategory[task.Category]++
		} else {
			summary.ByCategory[CategoryOther]++
		}
	}

	return summary
}
