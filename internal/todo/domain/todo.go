package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities low < medium < high.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	CategoryID  *string    `json:"categoryId"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Change is one field of a partial update. An unset Change leaves the field
// alone; a set Change with a nil Value clears it.
type Change[T any] struct {
	Set   bool
	Value *T
}

func SetTo[T any](v T) Change[T] { return Change[T]{Set: true, Value: &v} }

func Clear[T any]() Change[T] { return Change[T]{Set: true} }

// TodoPatch lists the fields a caller wants to change.
type TodoPatch struct {
	Title       Change[string]
	Description Change[string]
	DueDate     Change[time.Time]
	Priority    Change[Priority]
	CategoryID  Change[string]
}

func (p TodoPatch) Empty() bool {
	return !p.Title.Set && !p.Description.Set && !p.DueDate.Set && !p.Priority.Set && !p.CategoryID.Set
}

// Apply writes the set fields of p onto t. Title and Priority cannot be
// cleared, so a nil value for them is ignored.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title.Set && p.Title.Value != nil {
		t.Title = *p.Title.Value
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.DueDate.Set {
		t.DueDate = p.DueDate.Value
	}
	if p.Priority.Set && p.Priority.Value != nil {
		t.Priority = *p.Priority.Value
	}
	if p.CategoryID.Set {
		t.CategoryID = p.CategoryID.Value
	}
}
