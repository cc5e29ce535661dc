package botsdk

// ──────────────────────────────────────────────
// Intent catalog — labels, trigger keywords, priority order
// ──────────────────────────────────────────────

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentGoodbye          Intent = "goodbye"
	IntentThanks           Intent = "thanks"
	IntentHelp             Intent = "help"
	IntentBooking          Intent = "booking"
	IntentBookingTime      Intent = "booking_time"
	IntentStatus           Intent = "status"
	IntentCancel           Intent = "cancel"
	IntentQuestion         Intent = "question"
	IntentNameIntroduction Intent = "name_introduction"
	IntentNameQuery        Intent = "name_query"
	IntentWeather          Intent = "weather"
	IntentUnknown          Intent = "unknown"
)

// ClassificationResult is the immutable output of the classifier.
type ClassificationResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// MatchKind controls how a rule's keywords are tested against an utterance.
type MatchKind int

const (
	// MatchContains tests substring containment on the normalized text.
	// Use for multi-word phrases ("my name", "good morning").
	MatchContains MatchKind = iota
	// MatchWord tests equality against any alphanumeric token.
	// Use for short single words so "hi" does not match "history".
	MatchWord
	// MatchLeadToken tests equality against the first token only.
	// Use for question words that anchor the sentence.
	MatchLeadToken
)

// IntentRule binds an intent to its trigger keywords.
// Rules are evaluated in slice order: the first matching rule wins,
// which makes the tie-break policy for overlapping keywords explicit
// ("thanks for your help" is thanks, not help).
type IntentRule struct {
	Intent     Intent
	Kind       MatchKind
	Keywords   []string
	Confidence float64
}

// Confidence tiers. Social intents score higher than task intents;
// the unknown fallback always scores zero.
const (
	ConfidenceHigh    = 0.95
	ConfidenceDefault = 0.85
	ConfidenceNone    = 0.0
)

// DefaultIntentRules returns the built-in ordered rule set.
// Specific intents (booking, weather) are listed ahead of generic
// question-word matching so "what's the weather" stays weather.
func DefaultIntentRules() []IntentRule {
	return []IntentRule{
		{Intent: IntentNameQuery, Kind: MatchContains, Keywords: []string{"my name", "who am i"}, Confidence: ConfidenceDefault},
		{Intent: IntentThanks, Kind: MatchWord, Keywords: []string{"thanks", "thank", "appreciate"}, Confidence: ConfidenceHigh},
		{Intent: IntentHelp, Kind: MatchWord, Keywords: []string{"help", "assist", "assistance", "support"}, Confidence: ConfidenceDefault},
		{Intent: IntentGoodbye, Kind: MatchWord, Keywords: []string{"bye", "goodbye", "farewell"}, Confidence: ConfidenceHigh},
		{Intent: IntentGoodbye, Kind: MatchContains, Keywords: []string{"see you"}, Confidence: ConfidenceHigh},
		{Intent: IntentWeather, Kind: MatchWord, Keywords: []string{"weather", "forecast", "temperature", "rain"}, Confidence: ConfidenceDefault},
		{Intent: IntentBooking, Kind: MatchWord, Keywords: []string{"book", "booking", "schedule", "appointment", "meeting"}, Confidence: ConfidenceDefault},
		{Intent: IntentGreeting, Kind: MatchWord, Keywords: []string{"hello", "hi", "hey"}, Confidence: ConfidenceHigh},
		{Intent: IntentGreeting, Kind: MatchContains, Keywords: []string{"good morning", "good afternoon", "good evening"}, Confidence: ConfidenceHigh},
		{Intent: IntentQuestion, Kind: MatchLeadToken, Keywords: []string{"what", "how", "why", "when", "where", "who"}, Confidence: ConfidenceDefault},
		{Intent: IntentStatus, Kind: MatchWord, Keywords: []string{"status", "update", "progress"}, Confidence: ConfidenceDefault},
		{Intent: IntentCancel, Kind: MatchWord, Keywords: []string{"cancel", "stop", "abort"}, Confidence: ConfidenceDefault},
	}
}
