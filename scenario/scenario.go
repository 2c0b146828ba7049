// Package scenario describes a pathfinding query as plain data, parses it
// from "row,col" text, validates it and turns it into an astar.Pathfinder.
//
// A Scenario is the shared input format of the command line driver and the
// HTTP service.
package scenario

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/gridpath/astar"
)

var (
	// ErrInvalidScenario is the parent of every validation failure.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrBadCoord indicates a coordinate that is not "row,col".
	ErrBadCoord = errors.New("scenario: coordinate must be \"row,col\"")
)

// Scenario is one pathfinding query.
type Scenario struct {
	Name          string        `json:"name,omitempty"`
	Rows          int           `json:"rows" validate:"required,min=1,max=4096"`
	Cols          int           `json:"cols" validate:"required,min=1,max=4096"`
	Start         astar.Coord   `json:"start"`
	Goal          astar.Coord   `json:"goal"`
	Blocked       []astar.Coord `json:"blocked,omitempty"`
	Heuristic     string        `json:"heuristic,omitempty" validate:"omitempty,oneof=octile manhattan manhattan-unscaled"`
	MaxExpansions int           `json:"max_expansions,omitempty" validate:"min=0"`
}

// ValidationError lists every field that failed validation, translated to
// English.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidScenario, strings.Join(e.Fields, "; "))
}

// Unwrap lets errors.Is match ErrInvalidScenario.
func (e *ValidationError) Unwrap() error { return ErrInvalidScenario }

var (
	validate = validator.New()
	trans    ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Validate checks field ranges. Bounds of the coordinates and blocked
// endpoints are checked by Build, which reports astar errors.
func (s Scenario) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	out := &ValidationError{}
	for _, e := range verrs {
		out.Fields = append(out.Fields, e.Translate(trans))
	}
	return out
}

// Normalize returns a copy with duplicate blocked cells removed, keeping
// first occurrences in order.
func (s Scenario) Normalize() Scenario {
	seen := mapset.NewThreadUnsafeSet()
	blocked := make([]astar.Coord, 0, len(s.Blocked))
	for _, b := range s.Blocked {
		if seen.Add(b) {
			blocked = append(blocked, b)
		}
	}
	s.Blocked = blocked
	return s
}

// Options converts the scenario's tuning fields to astar options.
func (s Scenario) Options() ([]astar.Option, error) {
	k, err := astar.ParseHeuristic(s.Heuristic)
	if err != nil {
		return nil, err
	}
	opts := []astar.Option{astar.WithHeuristic(k)}
	if s.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(s.MaxExpansions))
	}
	return opts, nil
}

// Build validates and normalizes the scenario and constructs its
// Pathfinder. extra options are applied after the scenario's own.
func (s Scenario) Build(extra ...astar.Option) (*astar.Pathfinder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s = s.Normalize()
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	return astar.New(s.Rows, s.Cols, s.Start, s.Goal, s.Blocked, append(opts, extra...)...)
}

// ParseCoord parses "row,col". Surrounding spaces are ignored.
func ParseCoord(text string) (astar.Coord, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return astar.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, text)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return astar.Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, text, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return astar.Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, text, err)
	}
	return astar.Coord{Row: row, Col: col}, nil
}

// ParseCoords parses a ";"-separated list such as "1,1; 2,3".
// Empty input and empty items are skipped.
func ParseCoords(text string) ([]astar.Coord, error) {
	var out []astar.Coord
	for _, item := range strings.Split(text, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		at, err := ParseCoord(item)
		if err != nil {
			return nil, err
		}
		out = append(out, at)
	}
	return out, nil
}
