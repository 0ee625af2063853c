package topic

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// DefaultPrompt is the message shown above the topic choice list.
const DefaultPrompt = "Choose a topic"

// DefaultChoice is the 1-based position highlighted in the choice list.
const DefaultChoice = 5

// Outcome classifies a successful resolution.
type Outcome int

const (
	// Resolved means Result.Topic holds the topic to run.
	Resolved Outcome = iota
	// Aborted means the user cancelled the choice prompt. It is a clean exit.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of Resolve.
type Result struct {
	Outcome Outcome
	Topic   Topic
}

// Resolver turns a query into exactly one topic.
type Resolver struct {
	registry      Registry
	chooser       Chooser
	executor      Executor
	prompt        string
	defaultChoice int
	lang          language.Tag
	logger        *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultChoice sets the 1-based highlight hint passed to the chooser.
// Zero or a negative value disables the hint.
func WithDefaultChoice(n int) Option {
	return func(r *Resolver) {
		if n < 0 {
			n = 0
		}
		r.defaultChoice = n
	}
}

// WithPrompt overrides the chooser prompt message.
func WithPrompt(prompt string) Option {
	return func(r *Resolver) { r.prompt = prompt }
}

// WithLanguage sets the collation language used to order choices.
func WithLanguage(tag language.Tag) Option {
	return func(r *Resolver) { r.lang = tag }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver over the given host collaborators. The
// executor may be nil when only Resolve is used.
func NewResolver(reg Registry, ch Chooser, ex Executor, opts ...Option) *Resolver {
	r := &Resolver{
		registry:      reg,
		chooser:       ch,
		executor:      ex,
		prompt:        DefaultPrompt,
		defaultChoice: DefaultChoice,
		lang:          language.Und,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve filters a fresh index snapshot by query and reduces it to one
// topic. Zero matches fail with *NotFoundError before anything runs. One match
// resolves without prompting. Several matches are offered to the chooser,
// ordered by description; a cancellation yields an Aborted result.
func (r *Resolver) Resolve(ctx context.Context, query string) (Result, error) {
	idx := BuildIndex(r.registry)
	candidates := idx.Filter(query)
	r.logger.Debug("filtered topics", "query", query, "total", idx.Len(), "matches", candidates.IDs())

	var id string
	switch candidates.Len() {
	case 0:
		return Result{}, &NotFoundError{Query: query}
	case 1:
		id = candidates.topics[0].ID
	default:
		if r.chooser == nil {
			return Result{}, fmt.Errorf("%w: %d topics match %q; give a more specific name", ErrAmbiguous, candidates.Len(), query)
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		choices := Choices(candidates.Topics(), r.lang)
		chosen, err := r.chooser.Choose(ctx, choices, r.prompt, r.hint(len(choices)))
		if errors.Is(err, ErrCancelled) {
			r.logger.Debug("topic choice cancelled", "query", query)
			return Result{Outcome: Aborted}, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("choosing topic: %w", err)
		}
		id = chosen
	}

	if err := Validate(id); err != nil {
		return Result{}, err
	}
	t, ok := candidates.Lookup(id)
	if !ok {
		return Result{}, &NotFoundError{Query: id}
	}
	r.logger.Debug("resolved topic", "id", t.ID)
	return Result{Outcome: Resolved, Topic: t}, nil
}

// Run resolves query and executes the resolved topic with no arguments. An
// aborted choice returns status 0 and a nil error.
func (r *Resolver) Run(ctx context.Context, query string) (int, error) {
	res, err := r.Resolve(ctx, query)
	if err != nil {
		return 1, err
	}
	if res.Outcome == Aborted {
		return 0, nil
	}
	if r.executor == nil {
		return 1, fmt.Errorf("no executor for topic %q", res.Topic.ID)
	}
	r.logger.Debug("executing topic", "id", res.Topic.ID)
	return r.executor.Execute(ctx, res.Topic.ID, nil)
}

// hint returns the default index for a list of n choices, or 0 when the
// configured position is outside the list.
func (r *Resolver) hint(n int) int {
	if r.defaultChoice > n {
		return 0
	}
	return r.defaultChoice
}
