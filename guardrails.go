package botsdk

import (
	"fmt"
	"strings"
	"unicode"
)

// ──────────────────────────────────────────────
// Response Guard — output quality checks
// ──────────────────────────────────────────────

// ResponseGuardTriggered is returned when a generated response fails
// a quality check. Like a missing template, this indicates the
// response tables are misconfigured, not a bad user input.
type ResponseGuardTriggered struct {
	GuardName string
	Reason    string
}

func (e *ResponseGuardTriggered) Error() string {
	return fmt.Sprintf("response guard triggered: %s — %s", e.GuardName, e.Reason)
}

// GuardResult holds the outcome of a single guard check.
type GuardResult struct {
	Passed    bool
	Reason    string
	GuardName string
}

// GuardFunc is the signature for response check functions.
type GuardFunc func(text string) GuardResult

type guardDef struct {
	name string
	fn   GuardFunc
}

// ResponseGuard runs a chain of quality checks over generated
// responses: every response must be non-empty, start with a capital
// letter, end with terminal punctuation, fall in a conversational
// word range, and carry no raw error markers.
//
// Usage:
//
//	guard := botsdk.NewResponseGuard()
//	if err := guard.Check("Hello! How can I help you today?"); err != nil {
//	    // misconfigured template
//	}
type ResponseGuard struct {
	guards []guardDef
}

// NewResponseGuard creates a guard with the built-in quality checks.
func NewResponseGuard() *ResponseGuard {
	g := &ResponseGuard{}
	g.Add("non_empty", guardNonEmpty)
	g.Add("capitalized", guardCapitalized)
	g.Add("terminal_punctuation", guardTerminalPunctuation)
	g.Add("word_range", guardWordRange)
	g.Add("no_error_markers", guardNoErrorMarkers)
	return g
}

// Add registers an extra check. Guards run in registration order and
// stop at the first failure.
func (g *ResponseGuard) Add(name string, fn GuardFunc) {
	g.guards = append(g.guards, guardDef{name: name, fn: fn})
}

// Count returns the number of registered guards.
func (g *ResponseGuard) Count() int { return len(g.guards) }

// Check runs all guards. Returns *ResponseGuardTriggered on the first
// failure, nil when every guard passes.
func (g *ResponseGuard) Check(text string) error {
	if r := g.CheckSafe(text); !r.Passed {
		return &ResponseGuardTriggered{GuardName: r.GuardName, Reason: r.Reason}
	}
	return nil
}

// CheckSafe runs all guards and returns the first failing result
// without converting it to an error.
func (g *ResponseGuard) CheckSafe(text string) GuardResult {
	for _, gd := range g.guards {
		r := gd.fn(text)
		r.GuardName = gd.name
		if !r.Passed {
			return r
		}
	}
	return GuardResult{Passed: true}
}

// ─── Built-in checks ───

const (
	minResponseWords = 3
	maxResponseWords = 50
)

func guardNonEmpty(text string) GuardResult {
	if strings.TrimSpace(text) == "" {
		return GuardResult{Reason: "response is empty"}
	}
	return GuardResult{Passed: true}
}

func guardCapitalized(text string) GuardResult {
	for _, r := range text {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return GuardResult{Reason: "response does not start with a capital letter"}
			}
			return GuardResult{Passed: true}
		}
	}
	return GuardResult{Reason: "response has no letters"}
}

func guardTerminalPunctuation(text string) GuardResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return GuardResult{Reason: "response is empty"}
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return GuardResult{Passed: true}
	}
	return GuardResult{Reason: "response lacks terminal punctuation"}
}

func guardWordRange(text string) GuardResult {
	n := len(strings.Fields(text))
	if n < minResponseWords || n > maxResponseWords {
		return GuardResult{Reason: fmt.Sprintf("response has %d words, expected %d-%d", n, minResponseWords, maxResponseWords)}
	}
	return GuardResult{Passed: true}
}

func guardNoErrorMarkers(text string) GuardResult {
	lower := strings.ToLower(text)
	for _, marker := range []string{"error:", "panic:", "<nil>", "traceback", "exception"} {
		if strings.Contains(lower, marker) {
			return GuardResult{Reason: fmt.Sprintf("response contains error marker %q", marker)}
		}
	}
	return GuardResult{Passed: true}
}
