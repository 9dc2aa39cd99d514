package notion

import "time"

// Page is a record in a database. Properties maps the property name to its
// typed value as returned by the store.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Archived       bool                `json:"archived"`
	Properties     map[string]Property `json:"properties"`
}

// Property is the read-side envelope. Exactly one of the typed fields is
// populated, matching Type.
type Property struct {
	ID          string         `json:"id,omitempty"`
	Type        string         `json:"type,omitempty"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Relation    []RelationRef  `json:"relation,omitempty"`
}

type RichText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type RelationRef struct {
	ID string `json:"id"`
}

// Database describes a database's schema. The select and multi_select
// property configurations carry every option ever registered for the field,
// independent of what current rows contain.
type Database struct {
	ID         string                      `json:"id"`
	Properties map[string]DatabaseProperty `json:"properties"`
}

type DatabaseProperty struct {
	ID          string        `json:"id,omitempty"`
	Type        string        `json:"type,omitempty"`
	Select      *SelectConfig `json:"select,omitempty"`
	MultiSelect *SelectConfig `json:"multi_select,omitempty"`
}

type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

// Properties is the write-side property map for page create and update
// requests. Values are the *Property envelope types below.
type Properties map[string]any

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type CreatePageRequest struct {
	Parent     Parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

type UpdatePageRequest struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// Write-side envelopes. The typed key is always serialized, so a nil payload
// reaches the store as an explicit null and clears the property rather than
// leaving it untouched.
type (
	TitleProperty struct {
		Title []RichText `json:"title"`
	}
	RichTextProperty struct {
		RichText []RichText `json:"rich_text"`
	}
	URLProperty struct {
		URL *string `json:"url"`
	}
	SelectProperty struct {
		Select *SelectOption `json:"select"`
	}
	MultiSelectProperty struct {
		MultiSelect []SelectOption `json:"multi_select"`
	}
	NumberProperty struct {
		Number float64 `json:"number"`
	}
	RelationProperty struct {
		Relation []RelationRef `json:"relation"`
	}
)

// PlainText concatenates the plain-text runs of a title or rich_text value.
// An absent or empty property yields "".
func PlainText(runs []RichText) string {
	text := ""
	for _, run := range runs {
		if run.PlainText != "" {
			text += run.PlainText
			continue
		}
		if run.Text != nil {
			text += run.Text.Content
		}
	}
	return text
}

// NewRichText wraps a value as a single text run regardless of length.
func NewRichText(value string) []RichText {
	return []RichText{{Text: &TextContent{Content: value}}}
}

func NewTitle(value string) TitleProperty {
	return TitleProperty{Title: NewRichText(value)}
}

func NewText(value string) RichTextProperty {
	return RichTextProperty{RichText: NewRichText(value)}
}

// NewURL maps "" to a null payload; the store rejects empty URL strings.
func NewURL(value string) URLProperty {
	if value == "" {
		return URLProperty{}
	}
	return URLProperty{URL: &value}
}

func URLValue(url *string) string {
	if url == nil {
		return ""
	}
	return *url
}

// NewSelect maps "" to a null payload so the store records a cleared value
// instead of an option named "".
func NewSelect(name string) SelectProperty {
	if name == "" {
		return SelectProperty{}
	}
	return SelectProperty{Select: &SelectOption{Name: name}}
}

func SelectName(option *SelectOption) string {
	if option == nil {
		return ""
	}
	return option.Name
}

func NewMultiSelect(names []string) MultiSelectProperty {
	options := make([]SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, SelectOption{Name: name})
	}
	return MultiSelectProperty{MultiSelect: options}
}

func MultiSelectNames(options []SelectOption) []string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}
	return names
}

func NewNumber(value float64) NumberProperty {
	return NumberProperty{Number: value}
}

// NumberValue decodes an absent number to 0, the "unspecified" sentinel.
func NumberValue(number *float64) float64 {
	if number == nil {
		return 0
	}
	return *number
}

func NewRelation(ids []string) RelationProperty {
	refs := make([]RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, RelationRef{ID: id})
	}
	return RelationProperty{Relation: refs}
}

// RelationIDs returns the referenced ids in order. Resolving them into
// records is the caller's job.
func RelationIDs(refs []RelationRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
