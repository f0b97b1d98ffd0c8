package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	c := Default()
	require.Equal(t, 2, c.Len())

	tools := c.Tools()
	require.Equal(t, "Form-Builder", tools[0].Name)
	require.Equal(t, "Tâche-Liste", tools[1].Name)
	require.Equal(t, 4.8, tools[0].Rating)
	require.Equal(t, "2.8k", tools[1].Downloads)
	require.True(t, tools[1].IsNew)

	wantCats := []string{"web", "mobile", "automation", "security", "data"}
	var gotCats []string
	for _, cat := range c.Categories() {
		gotCats = append(gotCats, cat.ID)
	}
	if diff := cmp.Diff(wantCats, gotCats); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultIsShared(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestFeaturesAreTrimmed(t *testing.T) {
	tool, ok := Default().Tool(2)
	require.True(t, ok)
	want := []string{"créer", "modifier", "compléter", "Déclencheurs multiples", "supprimer"}
	if diff := cmp.Diff(want, tool.Features); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestToolsReturnsCopy(t *testing.T) {
	c := Default()
	tools := c.Tools()
	tools[0].Name = "mutated"
	tools[0].Features[0] = "mutated"

	again := c.Tools()
	require.Equal(t, "Form-Builder", again[0].Name)
	require.Equal(t, "Workflows visuels", again[0].Features[0])
}

func TestToolLookup(t *testing.T) {
	c := Default()
	tool, ok := c.Tool(1)
	require.True(t, ok)
	require.Equal(t, "Form-Builder", tool.Name)

	_, ok = c.Tool(999)
	require.False(t, ok)
}

func TestCategoryLabel(t *testing.T) {
	c := Default()

	tests := []struct {
		id        string
		wantName  string
		wantColor string
	}{
		{"web", "Web", "bg-blue-600"},
		{"security", "Sécurité", "bg-red-600"},
		{AllCategoryID, "Tous", DefaultCategoryColor},
		{"games", UnknownCategoryName, DefaultCategoryColor},
		{"", UnknownCategoryName, DefaultCategoryColor},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := c.CategoryLabel(tt.id)
			require.Equal(t, tt.wantName, got.Name)
			require.Equal(t, tt.wantColor, got.Color)
		})
	}
}

func TestFilterChoicesStartsWithAll(t *testing.T) {
	choices := Default().FilterChoices()
	require.Len(t, choices, 6)
	require.Equal(t, AllCategoryID, choices[0].ID)
	require.Equal(t, "web", choices[1].ID)
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	good := Tool{ID: 1, Name: "A", Rating: 3, DownloadLink: "https://a.example/"}

	tests := []struct {
		name  string
		tools []Tool
		cats  []Category
		want  error
	}{
		{
			name:  "duplicate tool id",
			tools: []Tool{good, good},
			want:  ErrDuplicateID,
		},
		{
			name:  "missing id",
			tools: []Tool{{Name: "A", DownloadLink: "https://a.example/"}},
			want:  ErrInvalidTool,
		},
		{
			name:  "rating above five",
			tools: []Tool{{ID: 1, Name: "A", Rating: 5.5, DownloadLink: "https://a.example/"}},
			want:  ErrInvalidTool,
		},
		{
			name:  "link not a url",
			tools: []Tool{{ID: 1, Name: "A", DownloadLink: "not a url"}},
			want:  ErrInvalidTool,
		},
		{
			name: "duplicate category",
			cats: []Category{{ID: "web", Name: "Web"}, {ID: "web", Name: "Web 2"}},
			want: ErrDuplicateID,
		},
		{
			name: "category named like the sentinel",
			cats: []Category{{ID: AllCategoryID, Name: "All"}},
			want: ErrDuplicateID,
		},
		{
			name: "category without name",
			cats: []Category{{ID: "web"}},
			want: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.tools, tt.cats)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestNewAcceptsUnknownToolCategory(t *testing.T) {
	c, err := New([]Tool{{ID: 7, Name: "Orphan", Category: "games", DownloadLink: "https://o.example/"}}, nil)
	require.NoError(t, err)
	require.Equal(t, UnknownCategoryName, c.CategoryLabel("games").Name)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
categories:
  - id: data
    name: Data
    color: bg-indigo-600
tools:
  - id: 10
    name: Pipeline
    category: data
    description: ETL en un clic
    rating: 3.9
    downloads: 12k
    download_link: https://pipeline.example/
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	tool, ok := c.Tool(10)
	require.True(t, ok)
	require.Equal(t, "12k", tool.Downloads)
	require.False(t, tool.IsNew)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load([]byte("tools: [this is: not valid"))
	require.Error(t, err)
}

func TestZeroValueCatalog(t *testing.T) {
	var c Catalog
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Tools())
	_, ok := c.Tool(1)
	require.False(t, ok)
	require.Equal(t, UnknownCategoryName, c.CategoryLabel("web").Name)
}
