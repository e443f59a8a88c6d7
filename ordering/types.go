package ordering

import (
	"context"
	"errors"
)

// Visitation states of a page during TopologicalSort.
const (
	White = iota // not yet visited
	Gray         // on the recursion stack
	Black        // fully explored
)

// Sentinel errors for rule checking and repair.
var (
	// ErrRulesNil is returned when a nil *Rules is used.
	ErrRulesNil = errors.New("ordering: rules are nil")
	// ErrDuplicatePage is returned when an update lists a page twice.
	ErrDuplicatePage = errors.New("ordering: duplicate page in update")
	// ErrCycleDetected is returned when the rules applying to an update
	// contain a cycle, so no order satisfies them.
	ErrCycleDetected = errors.New("ordering: cycle detected")
	// ErrMalformedInput wraps parse failures.
	ErrMalformedInput = errors.New("ordering: malformed input")
)

// Page is a page number.
type Page int

// Rule requires Before to be printed ahead of After.
type Rule struct {
	Before, After Page
}

// Update is the sequence of pages of one print job.
type Update []Page

// Middle returns the page at index len(u)/2. For an even length this is the
// later of the two central pages. It panics on an empty update.
func (u Update) Middle() Page { return u[len(u)/2] }

// Manual is a parsed safety manual: the rules and the updates to check.
type Manual struct {
	Rules   *Rules
	Updates []Update
}

// Option configures TopologicalSort.
type Option func(*SortOptions)

// SortOptions holds cancellation and hooks for TopologicalSort.
type SortOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called when a page is first discovered
	// (pre-order). A non-nil error aborts the sort.
	OnVisit func(p Page) error

	// OnExit, if non-nil, is called once every page that must follow p has
	// been placed (post-order). A non-nil error aborts the sort.
	OnExit func(p Page) error
}

// DefaultOptions returns a background context and no hooks.
func DefaultOptions() SortOptions {
	return SortOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *SortOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(p Page) error) Option {
	return func(o *SortOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(p Page) error) Option {
	return func(o *SortOptions) {
		o.OnExit = fn
	}
}
