package botsdk

import (
	"regexp"
	"strings"
)

// ──────────────────────────────────────────────
// Context Store — per-conversation extracted facts and slots
// ──────────────────────────────────────────────

// ContextKey is the closed set of facts a conversation can remember.
type ContextKey string

const (
	KeyUserName       ContextKey = "user_name"
	KeyBookingTime    ContextKey = "booking_time"
	KeyBookingStarted ContextKey = "booking_started"
)

// ValueKind tags the variant held by a ContextValue.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueBool
)

// ContextValue is a small tagged variant: either a string fact or a
// boolean flag. Keeping the value space closed avoids the open-ended
// dynamic attributes of the original fixture.
type ContextValue struct {
	Kind ValueKind `json:"kind"`
	Str  string    `json:"str,omitempty"`
	Bool bool      `json:"bool,omitempty"`
}

// StringValue wraps a string fact.
func StringValue(s string) ContextValue { return ContextValue{Kind: ValueString, Str: s} }

// BoolValue wraps a boolean flag.
func BoolValue(b bool) ContextValue { return ContextValue{Kind: ValueBool, Bool: b} }

// ContextUpdate is one (key, value) pair produced by extraction.
type ContextUpdate struct {
	Key   ContextKey
	Value ContextValue
}

// ContextStore holds the extracted facts of exactly one conversation.
// Setting an existing key replaces its value entirely; values are
// never merged or appended. Stores are never shared between
// conversations.
type ContextStore struct {
	data map[ContextKey]ContextValue
}

// NewContextStore creates an empty store.
func NewContextStore() *ContextStore {
	return &ContextStore{data: make(map[ContextKey]ContextValue)}
}

// Get returns the value for key and whether it is present.
func (s *ContextStore) Get(key ContextKey) (ContextValue, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetString returns the string fact for key, or "" if absent or not
// a string.
func (s *ContextStore) GetString(key ContextKey) string {
	if v, ok := s.data[key]; ok && v.Kind == ValueString {
		return v.Str
	}
	return ""
}

// GetBool returns the flag for key, or false if absent or not a bool.
func (s *ContextStore) GetBool(key ContextKey) bool {
	if v, ok := s.data[key]; ok && v.Kind == ValueBool {
		return v.Bool
	}
	return false
}

// Set overwrites the value for key.
func (s *ContextStore) Set(key ContextKey, value ContextValue) {
	s.data[key] = value
}

// Apply sets every update in order.
func (s *ContextStore) Apply(updates []ContextUpdate) {
	for _, u := range updates {
		s.Set(u.Key, u.Value)
	}
}

// Len returns the number of stored keys.
func (s *ContextStore) Len() int { return len(s.data) }

// Reset clears all keys. Subsequent Get calls report absent.
func (s *ContextStore) Reset() {
	s.data = make(map[ContextKey]ContextValue)
}

// Extract derives context updates from a classified utterance.
// Each turn only touches keys relevant to its own intent, so rapid
// intent switching leaves unrelated keys intact.
func (s *ContextStore) Extract(utterance string, result ClassificationResult) []ContextUpdate {
	switch result.Intent {
	case IntentNameIntroduction:
		if name := extractName(utterance); name != "" {
			return []ContextUpdate{{Key: KeyUserName, Value: StringValue(name)}}
		}
	case IntentBookingTime:
		// The slot value is the raw utterance; the flow flag drops
		// back so a later "book" starts a fresh booking.
		return []ContextUpdate{
			{Key: KeyBookingTime, Value: StringValue(strings.TrimSpace(utterance))},
			{Key: KeyBookingStarted, Value: BoolValue(false)},
		}
	}
	return nil
}

// ─── Name introduction patterns ───

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is (\w+)`),
	regexp.MustCompile(`call me (\w+)`),
	regexp.MustCompile(`i'm (\w+)`),
	regexp.MustCompile(`i am (\w+)`),
}

// isNameIntroduction reports whether a normalized utterance is a
// self-introduction. The bare "i am X" / "i'm X" forms only count on
// short utterances so "I'm looking for help" stays a help request.
func isNameIntroduction(norm string, tokens []string) bool {
	if strings.Contains(norm, "my name is") || strings.Contains(norm, "call me ") {
		return true
	}
	if len(tokens) <= 4 && (strings.Contains(norm, "i'm ") || strings.Contains(norm, "i am ")) {
		return true
	}
	return false
}

// extractName pulls the introduced name out of an utterance and
// capitalizes it. Returns "" when no pattern matches.
func extractName(utterance string) string {
	norm := normalizeUtterance(utterance)
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(norm); m != nil {
			return capitalize(m[1])
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
