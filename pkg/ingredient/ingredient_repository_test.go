package ingredient

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/pkg/notion"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const testDatabaseID = "db-ingredients"

func newTestRepository(t *testing.T, handler http.HandlerFunc) (IngredientRepository, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := notion.NewClient("secret", notion.WithBaseURL(server.URL), notion.WithHTTPClient(server.Client()))
	return NewIngredientRepository(client, testDatabaseID), server
}

func ingredientPage(id, name string) string {
	return `{
		"id": "` + id + `",
		"properties": {
			"Name": {"type": "title", "title": [{"plain_text": "` + name + `"}]},
			"Category": {"type": "select", "select": {"name": "채소"}},
			"Unit": {"type": "select", "select": {"name": "g"}}
		}
	}`
}

func TestIngredientRepository_List(t *testing.T) {
	var body map[string]any
	repo, server := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/databases/"+testDatabaseID+"/query" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode query body: %v", err)
		}
		io.WriteString(w, `{"results": [`+ingredientPage("ing-1", "김치")+`, `+ingredientPage("ing-2", "양파")+`]}`)
	})
	defer server.Close()

	ingredients, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("got %d ingredients, want 2", len(ingredients))
	}
	if ingredients[0].Name != "김치" || ingredients[0].Category != "채소" || ingredients[0].Unit != "g" {
		t.Errorf("decoded ingredient = %+v", ingredients[0])
	}

	// the store sorts, not the caller: list asks for Name ascending
	sorts := body["sorts"].([]any)
	first := sorts[0].(map[string]any)
	if first["property"] != "Name" || first["direction"] != "ascending" {
		t.Errorf("sorts = %v", sorts)
	}
	if _, ok := body["filter"]; ok {
		t.Errorf("list must not send a filter, got %v", body["filter"])
	}
}

func TestIngredientRepository_GetByID_NotFound(t *testing.T) {
	repo, server := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code":"object_not_found","message":"Could not find page"}`)
	})
	defer server.Close()

	_, err := repo.GetByID(context.Background(), "ing-missing")
	if !errors.Is(err, notion.ErrNotFound) {
		t.Errorf("error = %v, want wrapped notion.ErrNotFound", err)
	}
}

func TestIngredientRepository_Create(t *testing.T) {
	var body map[string]any
	repo, server := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/pages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode create body: %v", err)
		}
		io.WriteString(w, ingredientPage("ing-new", "두부"))
	})
	defer server.Close()

	created, err := repo.Create(context.Background(), domain.CreateIngredientRequest{
		Name:     "두부",
		Category: "채소",
		Unit:     "g",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "ing-new" {
		t.Errorf("created id = %q", created.ID)
	}

	parent := body["parent"].(map[string]any)
	if parent["database_id"] != testDatabaseID {
		t.Errorf("parent = %v", parent)
	}
	props := body["properties"].(map[string]any)
	run := props["Name"].(map[string]any)["title"].([]any)[0].(map[string]any)["text"].(map[string]any)
	if run["content"] != "두부" {
		t.Errorf("title content = %v", run)
	}
}

func TestIngredientRepository_Create_DuplicateNames(t *testing.T) {
	// no uniqueness check: the same name creates a second entity with its
	// own id
	var count atomic.Int32
	repo, server := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		switch count.Add(1) {
		case 1:
			io.WriteString(w, ingredientPage("ing-a", "소금"))
		default:
			io.WriteString(w, ingredientPage("ing-b", "소금"))
		}
	})
	defer server.Close()

	first, err := repo.Create(context.Background(), domain.CreateIngredientRequest{Name: "소금"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Create(context.Background(), domain.CreateIngredientRequest{Name: "소금"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("duplicate creates share id %q", first.ID)
	}
	if first.Name != second.Name {
		t.Errorf("names diverged: %q vs %q", first.Name, second.Name)
	}
}
