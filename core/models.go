package core

// Category is the closed set of business lines a task belongs to.
type Category string

const (
	CategoryRealEstate       Category = "real-estate"
	CategoryDigitalMarketing Category = "digital-marketing"
	CategorySoftwareDev      Category = "software-dev"
	CategoryLoan             Category = "loan"
	CategoryAIServices       Category = "ai-services"
)

// Categories returns every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryRealEstate,
		CategoryDigitalMarketing,
		CategorySoftwareDev,
		CategoryLoan,
		CategoryAIServices,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryRealEstate, CategoryDigitalMarketing, CategorySoftwareDev, CategoryLoan, CategoryAIServices:
		return true
	default:
		return false
	}
}

func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func ParsePriority(s string) (Priority, bool) {
	p := Priority(s)
	return p, p.Valid()
}

// Status has no enforced transition graph: any status may move to any
// other via an update.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}

// Task is the sole entity. ID is an opaque string assigned by the
// storage layer at creation time; CreatedAt is stamped once by the
// store and never mutated. DueDate is YYYY-MM-DD and Time is HH:MM,
// both compared lexicographically.
type Task struct {
	ID           string   `json:"id" db:"id"`
	Title        string   `json:"title" db:"title"`
	Description  string   `json:"description" db:"description"`
	Priority     Priority `json:"priority" db:"priority"`
	DueDate      string   `json:"dueDate" db:"due_date"`
	Time         string   `json:"time" db:"due_time"`
	Location     string   `json:"location,omitempty" db:"location"`
	Category     Category `json:"category" db:"category"`
	Status       Status   `json:"status" db:"status"`
	CreatedAt    string   `json:"createdAt" db:"created_at"`
	ClientName   string   `json:"clientName,omitempty" db:"client_name"`
	FollowUpDate string   `json:"followUpDate,omitempty" db:"follow_up_date"`
	Notes        string   `json:"notes,omitempty" db:"notes"`
}
