// Package domain defines the task batch model and its summary logic.
package domain

import "encoding/json"

// Task statuses recognised by the summary counters. Matching is
// case-sensitive and exact; anything else counts towards total only.
const (
	StatusAssigned   = "Assigned"
	StatusInProgress = "In-progress"
	StatusCompleted  = "Completed"
)

// Task categories. Categories outside this set roll up into CategoryOther.
const (
	CategoryChores   = "Chores"
	CategoryExercise = "Exercise"
	CategoryStudy    = "Study"
	CategoryOther    = "Other"
)

// Categories lists the fixed category names in display order.
var Categories = []string{CategoryChores, CategoryExercise, CategoryStudy, CategoryOther}

// TaskID is an opaque identifier. Clients send it as either a JSON
// string or a number; both are accepted and kept in textual form.
type TaskID string

// UnmarshalJSON accepts a JSON string or any other scalar token.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = TaskID(n.String())
	return nil
}

// Task is a single externally supplied task record. All fields are
// optional; period is passed through unvalidated.
type Task struct {
	ID       TaskID `json:"id,omitempty" dynamodbav:"id,omitempty"`
	Name     string `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Category string `json:"category,omitempty" dynamodbav:"category,omitempty"`
	Status   string `json:"status,omitempty" dynamodbav:"status,omitempty"`
	Period   string `json:"period,omitempty" dynamodbav:"period,omitempty"`
}

// Batch is the persisted unit: one client submission plus the
// server-derived fields. Date is the partition key, Timestamp the sort
// key; a batch is immutable once written and a second write to the same
// key pair fully replaces the first.
type Batch struct {
	Date      string  `json:"date" dynamodbav:"date"`
	Timestamp string  `json:"timestamp" dynamodbav:"timestamp"`
	CreatedAt string  `json:"createdAt" dynamodbav:"createdAt"`
	Tasks     []Task  `json:"tasks" dynamodbav:"tasks"`
	TaskCount int     `json:"taskCount" dynamodbav:"taskCount"`
	Summary   Summary `json:"summary" dynamodbav:"summary"`
}
