// Package server exposes the pathfinder over HTTP.
//
// Routes:
//
//	POST /api/paths           search a scenario given as JSON
//	GET  /api/presets         list the built-in scenarios
//	GET  /api/presets/{name}  search a built-in scenario (?grids=true adds grids)
//	GET  /metrics             prometheus metrics
//	GET  /healthz             liveness probe
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/scenario"
)

// DefaultMaxCells bounds rows×cols when Config.MaxCells is unset.
const DefaultMaxCells = 1 << 20

// ErrGridTooLarge rejects grids above Config.MaxCells before any allocation.
var ErrGridTooLarge = errors.New("server: grid exceeds the cell limit")

// Config tunes the service.
type Config struct {
	// MaxCells caps rows×cols per request; 0 means DefaultMaxCells.
	MaxCells int
	// MaxExpansions caps every search; 0 leaves requests uncapped unless
	// they set their own max_expansions.
	MaxExpansions int
	// SearchTimeout bounds a single search; 0 relies on the request context.
	SearchTimeout time.Duration
}

// Handler serves path queries.
type Handler struct {
	log     *zap.Logger
	metrics *Metrics
	cfg     Config
}

// NewRouter builds the chi router with logging, metrics and all routes.
// Collectors are registered on reg, which also backs /metrics.
func NewRouter(log *zap.Logger, reg *prometheus.Registry, cfg Config) *chi.Mux {
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = DefaultMaxCells
	}
	m := NewMetrics(reg)
	h := &Handler{log: log, metrics: m, cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/paths", h.findPath)
		r.Get("/presets", h.listPresets)
		r.Get("/presets/{name}", h.runPreset)
	})
	return r
}

// PathRequest is the body of POST /api/paths.
type PathRequest struct {
	scenario.Scenario
	IncludeGrids bool `json:"include_grids,omitempty"`
}

// Bind rejects bodies without grid dimensions before validation.
func (p *PathRequest) Bind(r *http.Request) error {
	if p.Rows == 0 && p.Cols == 0 {
		return errors.New("missing grid dimensions")
	}
	return nil
}

// PathResponse is the result of one search.
type PathResponse struct {
	Name      string         `json:"name,omitempty"`
	Found     bool           `json:"found"`
	Start     astar.Coord    `json:"start"`
	Goal      astar.Coord    `json:"goal"`
	Cost      int            `json:"cost"`
	Path      []astar.Coord  `json:"path,omitempty"`
	Expanded  int            `json:"expanded"`
	Pushed    int            `json:"pushed"`
	Heuristic string         `json:"heuristic"`
	Message   string         `json:"message,omitempty"`
	Grids     *GridsResponse `json:"grids,omitempty"`
}

// GridsResponse carries the per-cell diagnostics, indexed [row][col].
// Cost holds -1 for blocked cells and null for unreached ones.
type GridsResponse struct {
	Heuristic [][]int  `json:"heuristic"`
	Visited   [][]bool `json:"visited"`
	Cost      [][]*int `json:"cost"`
}

func (h *Handler) findPath(w http.ResponseWriter, r *http.Request) {
	data := &PathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	resp, err := h.search(r.Context(), data.Scenario, data.IncludeGrids)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, scenario.Presets())
}

func (h *Handler) runPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, ok := scenario.Preset(name)
	if !ok {
		render.Render(w, r, ErrNotFound(fmt.Errorf("unknown preset %q", name)))
		return
	}
	grids, _ := strconv.ParseBool(r.URL.Query().Get("grids"))

	resp, err := h.search(r.Context(), s, grids)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// search builds and runs one scenario under the service limits.
func (h *Handler) search(ctx context.Context, s scenario.Scenario, grids bool) (*PathResponse, error) {
	if s.Rows > 0 && s.Cols > 0 && s.Rows > h.cfg.MaxCells/s.Cols {
		h.metrics.observeSearch(outcomeInvalid, 0, 0)
		return nil, fmt.Errorf("%w: %d×%d, limit %d cells", ErrGridTooLarge, s.Rows, s.Cols, h.cfg.MaxCells)
	}
	if h.cfg.MaxExpansions > 0 && (s.MaxExpansions == 0 || s.MaxExpansions > h.cfg.MaxExpansions) {
		s.MaxExpansions = h.cfg.MaxExpansions
	}
	if h.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.SearchTimeout)
		defer cancel()
	}

	pf, err := s.Build(astar.WithContext(ctx))
	if err != nil {
		h.metrics.observeSearch(outcomeInvalid, 0, 0)
		return nil, err
	}
	res, err := pf.Search()
	if err != nil {
		h.metrics.observeSearch(outcomeError, res.Expanded, 0)
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		h.log.Warn("search aborted",
			zap.String("scenario", s.Name),
			zap.Int("expanded", res.Expanded),
			zap.Error(err),
		)
		return nil, err
	}

	resp := &PathResponse{
		Name:      s.Name,
		Found:     res.Found,
		Start:     res.Start,
		Goal:      res.Goal,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Pushed:    res.Pushed,
		Heuristic: pf.Heuristic().String(),
	}
	outcome := outcomeNotFound
	if res.Found {
		outcome = outcomeFound
		if resp.Path, err = pf.Path(); err != nil {
			return nil, err
		}
	} else {
		resp.Message = fmt.Sprintf("no path from %v to %v", res.Start, res.Goal)
	}
	if grids {
		resp.Grids = gridsOf(pf)
	}

	h.metrics.observeSearch(outcome, res.Expanded, len(resp.Path))
	h.log.Debug("search",
		zap.String("scenario", s.Name),
		zap.Bool("found", res.Found),
		zap.Int("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
		zap.Int("stale", res.Stale),
	)
	return resp, nil
}

func gridsOf(pf *astar.Pathfinder) *GridsResponse {
	costs := pf.CostGrid()
	out := make([][]*int, len(costs))
	for r, row := range costs {
		out[r] = make([]*int, len(row))
		for c := range row {
			if row[c] == astar.Unreached {
				continue
			}
			out[r][c] = &row[c]
		}
	}
	return &GridsResponse{
		Heuristic: pf.HeuristicGrid(),
		Visited:   pf.VisitedGrid(),
		Cost:      out,
	}
}

// renderError maps domain errors to HTTP responses.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *scenario.ValidationError
	switch {
	case errors.As(err, &verr):
		render.Render(w, r, ErrValidation(err, verr.Fields))
	case errors.Is(err, astar.ErrInvalidConfiguration):
		render.Render(w, r, ErrInvalidRequest(err))
	case errors.Is(err, ErrGridTooLarge):
		render.Render(w, r, ErrTooLarge(err))
	case errors.Is(err, astar.ErrExpansionLimit), errors.Is(err, context.DeadlineExceeded):
		render.Render(w, r, ErrUnprocessable(err))
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads this response.
		h.log.Debug("search canceled", zap.Error(err))
		render.Render(w, r, ErrUnprocessable(err))
	default:
		h.log.Error("search failed", zap.Error(err))
		render.Render(w, r, ErrInternal(err))
	}
}
