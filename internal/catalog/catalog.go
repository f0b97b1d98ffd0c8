// Package catalog holds the read-only tool catalog shown by devtools: the
// compiled-in seed of tools and the category lookup table used to label them.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// AllCategoryID is the filter sentinel that matches every category.
const AllCategoryID = "all"

// Fallbacks used when a tool references a category missing from the table.
const (
	UnknownCategoryName  = "no category found"
	DefaultCategoryColor = "bg-gray-600"
)

var (
	// ErrDuplicateID is returned when two tools (or two categories) share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidTool is returned when a tool record fails validation.
	ErrInvalidTool = errors.New("invalid tool")
	// ErrInvalidCategory is returned when a category record fails validation.
	ErrInvalidCategory = errors.New("invalid category")
)

//go:embed seed.yaml
var seedYAML []byte

// Tool is a single catalog entry.
type Tool struct {
	ID           int      `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Category     string   `yaml:"category" json:"category"`
	Description  string   `yaml:"description" json:"description"`
	Features     []string `yaml:"features" json:"features"`
	Rating       float64  `yaml:"rating" json:"rating"`
	Downloads    string   `yaml:"downloads" json:"downloads"`
	IsNew        bool     `yaml:"is_new" json:"isNew"`
	DownloadLink string   `yaml:"download_link" json:"downloadLink"`
}

// Validate checks the fields a tool must carry to be displayed.
func (t Tool) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Min(1)),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&t.DownloadLink, validation.Required, is.URL),
	)
}

// clone returns a copy that shares no backing arrays with t.
func (t Tool) clone() Tool {
	t.Features = slices.Clone(t.Features)
	return t
}

// Category is a row of the category lookup table.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Validate checks that the category can be rendered as a badge.
func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// AllCategory is the pseudo-category offered as the first filter choice.
func AllCategory() Category {
	return Category{ID: AllCategoryID, Name: "Tous", Color: DefaultCategoryColor}
}

// Catalog is an immutable, ordered set of tools plus the category table.
// The zero value is an empty catalog.
type Catalog struct {
	tools      []Tool
	categories []Category
	toolIdx    map[int]int
	catIdx     map[string]int
}

type seedFile struct {
	Categories []Category `yaml:"categories"`
	Tools      []Tool     `yaml:"tools"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. The embedded seed is
// parsed once; a seed that fails validation is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(seedYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded seed is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a YAML catalog document and validates it.
func Load(data []byte) (*Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(f.Tools, f.Categories)
}

// LoadFile reads and parses a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// New builds a catalog from tools and categories, preserving their order.
// Feature labels are whitespace-trimmed; the inputs are copied.
func New(tools []Tool, categories []Category) (*Catalog, error) {
	c := &Catalog{
		tools:      make([]Tool, 0, len(tools)),
		categories: make([]Category, 0, len(categories)),
		toolIdx:    make(map[int]int, len(tools)),
		catIdx:     make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidCategory, cat.ID, err)
		}
		if _, dup := c.catIdx[cat.ID]; dup || cat.ID == AllCategoryID {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		c.catIdx[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	for _, t := range tools {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w %d (%s): %v", ErrInvalidTool, t.ID, t.Name, err)
		}
		if _, dup := c.toolIdx[t.ID]; dup {
			return nil, fmt.Errorf("tool %d: %w", t.ID, ErrDuplicateID)
		}
		t = t.clone()
		for i, f := range t.Features {
			t.Features[i] = strings.TrimSpace(f)
		}
		c.toolIdx[t.ID] = len(c.tools)
		c.tools = append(c.tools, t)
	}

	return c, nil
}

// Len returns the number of tools.
func (c *Catalog) Len() int { return len(c.tools) }

// Tools returns the tools in seed order. The result is a copy.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	for i, t := range c.tools {
		out[i] = t.clone()
	}
	return out
}

// Categories returns the category table in seed order, without the "all"
// sentinel.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// FilterChoices returns the "all" sentinel followed by every category.
func (c *Catalog) FilterChoices() []Category {
	return append([]Category{AllCategory()}, c.categories...)
}

// Tool looks up a tool by id.
func (c *Catalog) Tool(id int) (Tool, bool) {
	i, ok := c.toolIdx[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i].clone(), true
}

// Category looks up a category by id. The "all" sentinel resolves too.
func (c *Catalog) Category(id string) (Category, bool) {
	if id == AllCategoryID {
		return AllCategory(), true
	}
	i, ok := c.catIdx[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// CategoryLabel resolves id for display. Unknown ids get a gray
// "no category found" badge instead of an error.
func (c *Catalog) CategoryLabel(id string) Category {
	if cat, ok := c.Category(id); ok {
		return cat
	}
	return Category{ID: id, Name: UnknownCategoryName, Color: DefaultCategoryColor}
}
