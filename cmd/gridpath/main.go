// Command gridpath runs an A* search on a grid and prints the diagnostic
// tables, or serves the HTTP API when -listen is given.
//
// Examples:
//
//	gridpath -preset corner
//	gridpath -rows 5 -cols 5 -start 0,0 -goal 4,4 -blocked "2,2;2,3" -color
//	gridpath -listen :5000 -max-expansions 100000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/server"
)

type config struct {
	preset        string
	rows, cols    int
	start, goal   string
	blocked       string
	heuristic     string
	maxExpansions int
	maxCells      int
	color         bool
	listen        string
	timeout       time.Duration
	debug         bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.StringVar(&cfg.preset, "preset", "", "built-in scenario: "+presetNames())
	fs.IntVar(&cfg.rows, "rows", 0, "grid rows")
	fs.IntVar(&cfg.cols, "cols", 0, "grid columns")
	fs.StringVar(&cfg.start, "start", "0,0", "start cell as row,col")
	fs.StringVar(&cfg.goal, "goal", "", "goal cell as row,col")
	fs.StringVar(&cfg.blocked, "blocked", "", "blocked cells as \"r,c;r,c\"")
	fs.StringVar(&cfg.heuristic, "heuristic", "", "octile (default), manhattan or manhattan-unscaled")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	fs.IntVar(&cfg.maxCells, "max-cells", server.DefaultMaxCells, "largest rows×cols accepted when serving")
	fs.BoolVar(&cfg.color, "color", false, "colour the tables")
	fs.StringVar(&cfg.listen, "listen", "", "serve the HTTP API on this address instead")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-search timeout when serving")
	fs.BoolVar(&cfg.debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func presetNames() string {
	var names []string
	for _, p := range scenario.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// scenarioOf builds the scenario named by -preset, or from the grid flags.
// Explicit tuning flags override the preset's.
func (cfg config) scenarioOf() (scenario.Scenario, error) {
	var s scenario.Scenario
	if cfg.preset != "" {
		p, ok := scenario.Preset(cfg.preset)
		if !ok {
			return s, fmt.Errorf("unknown preset %q (have %s)", cfg.preset, presetNames())
		}
		s = p
	} else {
		if cfg.goal == "" {
			return s, errors.New("either -preset or -goal is required")
		}
		start, err := scenario.ParseCoord(cfg.start)
		if err != nil {
			return s, err
		}
		goal, err := scenario.ParseCoord(cfg.goal)
		if err != nil {
			return s, err
		}
		blocked, err := scenario.ParseCoords(cfg.blocked)
		if err != nil {
			return s, err
		}
		s = scenario.Scenario{Rows: cfg.rows, Cols: cfg.cols, Start: start, Goal: goal, Blocked: blocked}
	}
	if cfg.heuristic != "" {
		s.Heuristic = cfg.heuristic
	}
	if cfg.maxExpansions != 0 {
		s.MaxExpansions = cfg.maxExpansions
	}
	return s, nil
}

// run searches s and writes the heuristic table and the full report to w.
func run(w io.Writer, s scenario.Scenario, color bool, log *zap.Logger) error {
	pf, err := s.Build()
	if err != nil {
		return err
	}
	p := render.NewPrinter(w, color)
	if err := p.Heuristics(pf); err != nil {
		return err
	}

	res, err := pf.Search()
	if err != nil {
		return err
	}
	log.Debug("search finished",
		zap.Bool("found", res.Found),
		zap.Int("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
		zap.Int("pushed", res.Pushed),
		zap.Int("stale", res.Stale),
	)
	return p.Report(pf)
}

// serve runs the HTTP API until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, cfg config, log *zap.Logger) error {
	reg := prometheus.NewRegistry()
	srv := &http.Server{
		Addr: cfg.listen,
		Handler: server.NewRouter(log, reg, server.Config{
			MaxCells:      cfg.maxCells,
			MaxExpansions: cfg.maxExpansions,
			SearchTimeout: cfg.timeout,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", cfg.listen))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log, err := newLogger(cfg.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.listen != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := serve(ctx, cfg, log); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
		return
	}

	s, err := cfg.scenarioOf()
	if err != nil {
		log.Fatal("bad scenario", zap.Error(err))
	}
	if err := run(os.Stdout, s, cfg.color, log); err != nil {
		log.Fatal("search failed", zap.Error(err))
	}
}
