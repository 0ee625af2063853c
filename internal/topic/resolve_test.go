package topic

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestResolve_SingleMatchSkipsChooser(t *testing.T) {
	ch := &fakeChooser{pick: "docs-api"}
	r := NewResolver(topics("docs-readme", "README", "docs-api", "API"), ch, nil)

	res, err := r.Resolve(context.Background(), "readme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Resolved || res.Topic.ID != "docs-readme" {
		t.Errorf("Resolve() = %+v, want docs-readme resolved", res)
	}
	if ch.calls != 0 {
		t.Errorf("chooser called %d times, want 0", ch.calls)
	}
}

func TestResolve_SingleTopicEmptyQuery(t *testing.T) {
	ch := &fakeChooser{}
	r := NewResolver(topics("docs-readme", "README"), ch, nil)

	res, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Topic.ID != "docs-readme" {
		t.Errorf("resolved %q, want docs-readme", res.Topic.ID)
	}
	if ch.calls != 0 {
		t.Errorf("chooser called %d times, want 0", ch.calls)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	ch := &fakeChooser{}
	ex := &fakeExecutor{}
	r := NewResolver(topics("a", "A", "b", "B"), ch, ex)

	status, err := r.Run(context.Background(), "zzz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Query != "zzz" {
		t.Errorf("expected NotFoundError with query zzz, got %#v", err)
	}
	if !strings.Contains(err.Error(), "zzz") {
		t.Errorf("error %q should name the query", err)
	}
	if status == 0 {
		t.Error("expected non-zero status")
	}
	if len(ex.ran) != 0 {
		t.Errorf("executor ran %v, want nothing", ex.ran)
	}
	if ch.calls != 0 {
		t.Errorf("chooser called %d times, want 0", ch.calls)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	r := NewResolver(fakeRegistry{}, &fakeChooser{}, nil)
	_, err := r.Resolve(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty registry, got %v", err)
	}
}

func TestResolve_MultipleMatchesUsesChooser(t *testing.T) {
	ch := &fakeChooser{pick: "docs-zoo"}
	reg := topics(
		"docs-readme", "Readme",
		"docs-api", "api docs",
		"docs-zoo", "Zoo",
		"config", "not a topic prefix",
	)
	reg[3].Tags = nil
	r := NewResolver(reg, ch, nil)

	res, err := r.Resolve(context.Background(), "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != Resolved || res.Topic.ID != "docs-zoo" {
		t.Errorf("Resolve() = %+v, want docs-zoo", res)
	}
	if ch.calls != 1 {
		t.Fatalf("chooser called %d times, want 1", ch.calls)
	}
	if ch.prompt != DefaultPrompt {
		t.Errorf("prompt = %q, want %q", ch.prompt, DefaultPrompt)
	}
	if want := []string{"api docs", "Readme", "Zoo"}; !reflect.DeepEqual(labels(ch.choices), want) {
		t.Errorf("choice labels = %v, want %v", labels(ch.choices), want)
	}
	if ch.choices[0].ID != "docs-api" {
		t.Errorf("first choice ID = %q, want docs-api", ch.choices[0].ID)
	}
}

func TestResolve_CancelledIsAborted(t *testing.T) {
	ch := &fakeChooser{err: ErrCancelled}
	ex := &fakeExecutor{}
	r := NewResolver(topics("a1", "one", "a2", "two"), ch, ex)

	res, err := r.Resolve(context.Background(), "a")
	if err != nil {
		t.Fatalf("cancellation should not be an error, got %v", err)
	}
	if res.Outcome != Aborted {
		t.Errorf("outcome = %v, want aborted", res.Outcome)
	}

	status, err := r.Run(context.Background(), "a")
	if err != nil || status != 0 {
		t.Errorf("Run() = (%d, %v), want (0, nil)", status, err)
	}
	if len(ex.ran) != 0 {
		t.Errorf("executor ran %v after abort", ex.ran)
	}
}

func TestResolve_WrappedCancellation(t *testing.T) {
	ch := &fakeChooser{err: errors.Join(errors.New("eof"), ErrCancelled)}
	r := NewResolver(topics("a1", "one", "a2", "two"), ch, nil)

	res, err := r.Resolve(context.Background(), "")
	if err != nil || res.Outcome != Aborted {
		t.Errorf("Resolve() = (%+v, %v), want aborted", res, err)
	}
}

func TestResolve_ChooserError(t *testing.T) {
	boom := errors.New("terminal gone")
	r := NewResolver(topics("a1", "one", "a2", "two"), &fakeChooser{err: boom}, nil)

	_, err := r.Resolve(context.Background(), "")
	if !errors.Is(err, boom) {
		t.Errorf("expected chooser error to be wrapped, got %v", err)
	}
}

func TestResolve_EmptyChoiceIsNotFound(t *testing.T) {
	r := NewResolver(topics("a1", "one", "a2", "two"), &fakeChooser{pick: ""}, nil)

	_, err := r.Resolve(context.Background(), "a")
	if !errors.Is(err, ErrEmptyTopic) {
		t.Errorf("expected ErrEmptyTopic, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("empty choice should also match ErrNotFound, got %v", err)
	}
}

func TestResolve_BlankChoiceIsLookedUpAsGiven(t *testing.T) {
	r := NewResolver(topics("a1", "one", "a2", "two"), &fakeChooser{pick: "  "}, nil)

	_, err := r.Resolve(context.Background(), "a")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Query != "  " {
		t.Fatalf("expected NotFoundError for the blank id, got %v", err)
	}
	if errors.Is(err, ErrEmptyTopic) {
		t.Error("a blank id is not the empty id")
	}
}

func TestResolve_UnknownChoiceIsNotFound(t *testing.T) {
	r := NewResolver(topics("a1", "one", "a2", "two", "b", "three"), &fakeChooser{pick: "b"}, nil)

	_, err := r.Resolve(context.Background(), "a")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Query != "b" {
		t.Errorf("expected NotFoundError for b, got %v", err)
	}
}

func TestResolve_DefaultChoiceHint(t *testing.T) {
	reg := topics("t1", "1", "t2", "2", "t3", "3", "t4", "4", "t5", "5", "t6", "6")

	tests := []struct {
		name  string
		opts  []Option
		query string
		want  int
	}{
		{"default fifth entry", nil, "t", DefaultChoice},
		{"fewer entries than hint", nil, "t1", 0},
		{"custom hint", []Option{WithDefaultChoice(2)}, "t", 2},
		{"disabled", []Option{WithDefaultChoice(0)}, "t", 0},
		{"negative disabled", []Option{WithDefaultChoice(-3)}, "t", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &fakeChooser{pick: "t1"}
			r := NewResolver(reg, ch, nil, tt.opts...)
			if _, err := r.Resolve(context.Background(), tt.query); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ch.calls == 0 {
				if tt.want != 0 {
					t.Fatalf("chooser not called")
				}
				return
			}
			if ch.def != tt.want {
				t.Errorf("default index = %d, want %d", ch.def, tt.want)
			}
		})
	}
}

func TestResolve_HintOutOfRange(t *testing.T) {
	ch := &fakeChooser{pick: "a1"}
	r := NewResolver(topics("a1", "one", "a2", "two", "a3", "three"), ch, nil)
	if _, err := r.Resolve(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.def != 0 {
		t.Errorf("default index = %d for 3 choices, want 0", ch.def)
	}
}

func TestResolve_CustomPrompt(t *testing.T) {
	ch := &fakeChooser{pick: "a1"}
	r := NewResolver(topics("a1", "one", "a2", "two"), ch, nil, WithPrompt("Pick one"))
	if _, err := r.Resolve(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.prompt != "Pick one" {
		t.Errorf("prompt = %q, want %q", ch.prompt, "Pick one")
	}
}

func TestResolve_CancelledContextBeforePrompt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := &fakeChooser{pick: "a1"}
	r := NewResolver(topics("a1", "one", "a2", "two"), ch, nil)
	_, err := r.Resolve(ctx, "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ch.calls != 0 {
		t.Errorf("chooser called %d times with cancelled context", ch.calls)
	}
}

func TestResolve_NoChooserForAmbiguousQuery(t *testing.T) {
	r := NewResolver(topics("a1", "one", "a2", "two"), nil, nil)
	_, err := r.Resolve(context.Background(), "a")
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("an ambiguous query is not a missing topic")
	}
	if !strings.Contains(err.Error(), "2 topics match") {
		t.Errorf("message %q should give the match count", err)
	}
}

func TestResolve_RepeatedNarrowingIsStable(t *testing.T) {
	reg := topics("x-one", "One", "x-two", "Two", "y", "Y")
	ch := &fakeChooser{err: ErrCancelled}
	r := NewResolver(reg, ch, nil)

	if _, err := r.Resolve(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := labels(ch.choices)
	if _, err := r.Resolve(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second := labels(ch.choices); !reflect.DeepEqual(first, second) {
		t.Errorf("second pass choices = %v, first = %v", second, first)
	}
}

func TestRun_ExecutesResolvedTopicWithoutArgs(t *testing.T) {
	ex := &fakeExecutor{status: 3}
	r := NewResolver(topics("docs-readme", "README"), &fakeChooser{}, ex)

	status, err := r.Run(context.Background(), "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != 3 {
		t.Errorf("status = %d, want executor status 3", status)
	}
	if !reflect.DeepEqual(ex.ran, []string{"docs-readme"}) {
		t.Errorf("executor ran %v, want [docs-readme]", ex.ran)
	}
	if len(ex.args[0]) != 0 {
		t.Errorf("executor args = %v, want none", ex.args[0])
	}
}

func TestRun_ExecutorError(t *testing.T) {
	boom := errors.New("exec failed")
	r := NewResolver(topics("a", "A"), nil, &fakeExecutor{status: 1, err: boom})
	if _, err := r.Run(context.Background(), ""); !errors.Is(err, boom) {
		t.Errorf("expected executor error, got %v", err)
	}
}

func TestRun_NoExecutor(t *testing.T) {
	r := NewResolver(topics("a", "A"), nil, nil)
	if _, err := r.Run(context.Background(), ""); err == nil {
		t.Error("expected error without executor")
	}
}

func TestOutcomeString(t *testing.T) {
	if Resolved.String() != "resolved" || Aborted.String() != "aborted" {
		t.Errorf("unexpected outcome strings %q %q", Resolved, Aborted)
	}
	if got := Outcome(9).String(); got != "outcome(9)" {
		t.Errorf("Outcome(9).String() = %q", got)
	}
}
