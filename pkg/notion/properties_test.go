package notion

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		runs []RichText
		want string
	}{
		{name: "absent property", runs: nil, want: ""},
		{name: "empty runs", runs: []RichText{}, want: ""},
		{name: "single run", runs: []RichText{{PlainText: "hello"}}, want: "hello"},
		{
			name: "multiple runs concatenated",
			runs: []RichText{{PlainText: "1. chop"}, {PlainText: "\n2. fry"}},
			want: "1. chop\n2. fry",
		},
		{
			name: "write-side runs fall back to text content",
			runs: NewRichText("drafted"),
			want: "drafted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.runs); got != tt.want {
				t.Errorf("PlainText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRichText(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a very long instruction line "
	}

	runs := NewRichText(long)
	if len(runs) != 1 {
		t.Fatalf("expected a single run, got %d", len(runs))
	}
	if runs[0].Text.Content != long {
		t.Errorf("run content does not match input")
	}
}

func TestSelectCodec(t *testing.T) {
	if got := SelectName(nil); got != "" {
		t.Errorf("SelectName(nil) = %q, want empty", got)
	}
	if got := SelectName(&SelectOption{Name: "한식"}); got != "한식" {
		t.Errorf("SelectName = %q, want 한식", got)
	}

	// An empty value must serialize as an explicit null so the store can
	// tell "cleared" from "never sent".
	cleared, err := json.Marshal(NewSelect(""))
	if err != nil {
		t.Fatal(err)
	}
	if string(cleared) != `{"select":null}` {
		t.Errorf("NewSelect(\"\") serialized as %s", cleared)
	}

	set, err := json.Marshal(NewSelect("한식"))
	if err != nil {
		t.Fatal(err)
	}
	if string(set) != `{"select":{"name":"한식"}}` {
		t.Errorf("NewSelect serialized as %s", set)
	}
}

func TestMultiSelectCodec(t *testing.T) {
	names := MultiSelectNames([]SelectOption{{Name: "매운맛"}, {Name: "국물요리"}, {Name: "매운맛"}})
	// duplicates from the store pass through untouched
	if !reflect.DeepEqual(names, []string{"매운맛", "국물요리", "매운맛"}) {
		t.Errorf("MultiSelectNames = %v", names)
	}

	if got := MultiSelectNames(nil); len(got) != 0 {
		t.Errorf("MultiSelectNames(nil) = %v, want empty", got)
	}

	encoded, err := json.Marshal(NewMultiSelect(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `{"multi_select":[]}` {
		t.Errorf("NewMultiSelect(nil) serialized as %s", encoded)
	}
}

func TestNumberValue(t *testing.T) {
	if got := NumberValue(nil); got != 0 {
		t.Errorf("NumberValue(nil) = %v, want 0", got)
	}

	n := 4.0
	if got := NumberValue(&n); got != 4 {
		t.Errorf("NumberValue = %v, want 4", got)
	}
}

func TestURLCodec(t *testing.T) {
	if got := URLValue(nil); got != "" {
		t.Errorf("URLValue(nil) = %q, want empty", got)
	}

	encoded, err := json.Marshal(NewURL(""))
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `{"url":null}` {
		t.Errorf("NewURL(\"\") serialized as %s", encoded)
	}
}

func TestRelationIDs(t *testing.T) {
	ids := RelationIDs([]RelationRef{{ID: "ing-1"}, {ID: "ing-2"}})
	if !reflect.DeepEqual(ids, []string{"ing-1", "ing-2"}) {
		t.Errorf("RelationIDs = %v", ids)
	}

	if got := RelationIDs(nil); len(got) != 0 {
		t.Errorf("RelationIDs(nil) = %v, want empty", got)
	}
}
