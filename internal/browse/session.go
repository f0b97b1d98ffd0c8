// Package browse owns a single user's browsing session: the current query,
// the favorites set and the display list derived from them.
//
// User actions arrive as events. Apply installs the resulting state and
// recomputes the display list only when the query part of the state changed;
// favorite toggles just re-flag the existing list.
package browse

import (
	"go.uber.org/zap"

	"github.com/lamchakchan/devtools-pro/internal/catalog"
	"github.com/lamchakchan/devtools-pro/internal/favorites"
	"github.com/lamchakchan/devtools-pro/internal/query"
)

// Event is a user action that moves the session to a new state.
type Event interface {
	apply(query.State, favorites.Set) (query.State, favorites.Set)
}

// SetSearch replaces the search term.
type SetSearch struct{ Term string }

// SelectCategory filters on a category id, or catalog.AllCategoryID.
type SelectCategory struct{ ID string }

// SetSort changes the sort key.
type SetSort struct{ Key query.SortKey }

// ToggleFavorite flips a tool's favorite flag.
type ToggleFavorite struct{ ToolID int }

func (e SetSearch) apply(st query.State, f favorites.Set) (query.State, favorites.Set) {
	return st.WithSearch(e.Term), f
}

func (e SelectCategory) apply(st query.State, f favorites.Set) (query.State, favorites.Set) {
	return st.WithCategory(e.ID), f
}

func (e SetSort) apply(st query.State, f favorites.Set) (query.State, favorites.Set) {
	return st.WithSort(e.Key), f
}

func (e ToggleFavorite) apply(st query.State, f favorites.Set) (query.State, favorites.Set) {
	return st, f.Toggle(e.ToolID)
}

// ToolView is the display model for one tool.
type ToolView struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	CategoryID    string   `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	CategoryColor string   `json:"categoryColor"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
	Downloads     string   `json:"downloads"`
	IsNew         bool     `json:"isNew"`
	Favorite      bool     `json:"favorite"`
	DownloadLink  string   `json:"downloadLink"`
}

// Option configures a Session.
type Option func(*Session)

// WithState starts the session from st instead of query.DefaultState.
func WithState(st query.State) Option {
	return func(s *Session) {
		s.state = query.DefaultState().
			WithSearch(st.Search).
			WithCategory(st.Category).
			WithSort(st.Sort)
	}
}

// WithFavorites seeds the favorites set.
func WithFavorites(f favorites.Set) Option {
	return func(s *Session) { s.favorites = f }
}

// Session is not safe for concurrent use; it belongs to one event loop.
type Session struct {
	catalog   *catalog.Catalog
	logger    *zap.Logger
	state     query.State
	favorites favorites.Set

	results     []catalog.Tool
	computedFor query.State
	computed    bool
	recomputes  int
}

// New creates a session over c. A nil logger disables logging.
func New(c *catalog.Catalog, logger *zap.Logger, opts ...Option) *Session {
	if c == nil {
		c = &catalog.Catalog{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		catalog: c,
		logger:  logger,
		state:   query.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// Catalog returns the catalog the session browses.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// State returns the current query state.
func (s *Session) State() query.State { return s.state }

// Favorites returns the current favorites set.
func (s *Session) Favorites() favorites.Set { return s.favorites }

// Recomputes returns how many times the display list has been derived.
func (s *Session) Recomputes() int { return s.recomputes }

// Apply installs the state produced by ev. It reports whether anything the
// user sees changed: a new display list or a different favorite flag.
func (s *Session) Apply(ev Event) bool {
	if ev == nil {
		return false
	}
	st, fav := ev.apply(s.state, s.favorites)
	favChanged := !fav.Equal(s.favorites)
	s.state, s.favorites = st, fav

	if s.computed && s.computedFor == s.state {
		if favChanged {
			s.logger.Debug("favorites changed", zap.Ints("favorites", fav.IDs()))
		}
		return favChanged
	}
	s.recompute()
	return true
}

func (s *Session) recompute() {
	s.results = query.FilterAndSort(s.catalog.Tools(), s.state)
	s.computedFor = s.state
	s.computed = true
	s.recomputes++
	s.logger.Debug("results recomputed",
		zap.String("search", s.state.Search),
		zap.String("category", s.state.Category),
		zap.String("sort", string(s.state.Sort)),
		zap.Int("count", len(s.results)))
}

// Results returns the current display list in order.
func (s *Session) Results() []catalog.Tool {
	out := make([]catalog.Tool, len(s.results))
	copy(out, s.results)
	return out
}

// Views returns the display list as view models, flagged with favorites.
func (s *Session) Views() []ToolView {
	out := make([]ToolView, len(s.results))
	for i, t := range s.results {
		out[i] = s.view(t)
	}
	return out
}

func (s *Session) view(t catalog.Tool) ToolView {
	cat := s.catalog.CategoryLabel(t.Category)
	features := make([]string, len(t.Features))
	copy(features, t.Features)
	return ToolView{
		ID:            t.ID,
		Name:          t.Name,
		CategoryID:    t.Category,
		CategoryLabel: cat.Name,
		CategoryColor: cat.Color,
		Description:   t.Description,
		Features:      features,
		Rating:        t.Rating,
		Downloads:     t.Downloads,
		IsNew:         t.IsNew,
		Favorite:      s.favorites.Contains(t.ID),
		DownloadLink:  t.DownloadLink,
	}
}
