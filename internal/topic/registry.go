package topic

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/physcalc/internal/formula"
)

// Registry holds the topics and the constants they are solved with. It is
// immutable after construction.
type Registry struct {
	consts formula.Constants
	topics map[string]*Topic
	order  []string
	logger *slog.Logger
}

// NewRegistry builds the registry of built-in topics solved with consts. A nil
// logger discards.
func NewRegistry(consts formula.Constants, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		consts: consts,
		topics: make(map[string]*Topic),
		logger: logger,
	}
	for _, t := range builtinTopics() {
		r.topics[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

func (r *Registry) Constants() formula.Constants { return r.consts }

func (r *Registry) Get(name string) (*Topic, error) {
	t, ok := r.topics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, name)
	}
	return t, nil
}

// List returns topic names in display order.
func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) Topics() []*Topic {
	topics := make([]*Topic, len(r.order))
	for i, name := range r.order {
		topics[i] = r.topics[name]
	}
	return topics
}

func (r *Registry) Solve(name string, in Inputs) (formula.Result, error) {
	t, err := r.Get(name)
	if err != nil {
		return formula.Result{}, err
	}
	if err := t.Validate(in); err != nil {
		r.logger.Debug("rejected inputs", "topic", name, "err", err)
		return formula.Result{}, err
	}

	res, err := t.eval(r.consts, in)
	if err != nil {
		r.logger.Debug("solve failed", "topic", name, "kind", formula.KindOf(err), "err", err)
		return formula.Result{}, err
	}
	for _, q := range res.Quantities {
		if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
			err := formula.InvalidInput(name, "%s is not finite (%g), inputs out of floating-point range", q.Label, q.Value)
			r.logger.Debug("solve failed", "topic", name, "kind", formula.KindOf(err), "err", err)
			return formula.Result{}, err
		}
	}
	r.logger.Debug("solved", "topic", name, "inputs", in, "results", len(res.Quantities))
	return res, nil
}
