package notion

const (
	SortAscending  = "ascending"
	SortDescending = "descending"

	TimestampCreatedTime = "created_time"
)

type QueryRequest struct {
	Filter *Filter `json:"filter,omitempty"`
	Sorts  []Sort  `json:"sorts,omitempty"`
}

type QueryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// Filter is one node of the query filter tree: either a compound And/Or of
// sub-filters, or a single per-property condition.
type Filter struct {
	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`

	Property    string                `json:"property,omitempty"`
	Title       *TextCondition        `json:"title,omitempty"`
	RichText    *TextCondition        `json:"rich_text,omitempty"`
	Select      *SelectCondition      `json:"select,omitempty"`
	MultiSelect *MultiSelectCondition `json:"multi_select,omitempty"`
	Relation    *RelationCondition    `json:"relation,omitempty"`
}

type TextCondition struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

type SelectCondition struct {
	Equals string `json:"equals,omitempty"`
}

type MultiSelectCondition struct {
	Contains string `json:"contains,omitempty"`
}

type RelationCondition struct {
	Contains string `json:"contains,omitempty"`
}

// Sort orders by a named property or by a page timestamp; exactly one of
// Property and Timestamp is set.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}
