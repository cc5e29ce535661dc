package botsdk

import "strings"

// ──────────────────────────────────────────────
// Intent Classifier — deterministic keyword matching
// ──────────────────────────────────────────────

// IntentClassifier maps free-text utterances to intents using an
// ordered keyword rule set. Classification is pure: no state, no I/O,
// total over arbitrary input.
//
// Usage:
//
//	c := botsdk.NewIntentClassifier()
//	res := c.Classify("Hello there")
//	// res.Intent == botsdk.IntentGreeting, res.Confidence == 0.95
type IntentClassifier struct {
	rules []IntentRule
}

// NewIntentClassifier creates a classifier. Pass a rule set to
// override the built-in catalog; rule order is the priority order.
func NewIntentClassifier(rules ...[]IntentRule) *IntentClassifier {
	rs := DefaultIntentRules()
	if len(rules) > 0 {
		rs = rules[0]
	}
	return &IntentClassifier{rules: rs}
}

// Rules returns a copy of the ordered rule set.
func (c *IntentClassifier) Rules() []IntentRule {
	cp := make([]IntentRule, len(c.rules))
	copy(cp, c.rules)
	return cp
}

// Classify resolves an utterance to an intent and confidence score.
// Empty, whitespace-only, or punctuation-only input is unknown with
// confidence 0. Case never affects the result.
func (c *IntentClassifier) Classify(utterance string) ClassificationResult {
	norm := normalizeUtterance(utterance)
	tokens := tokenize(norm)
	if len(tokens) == 0 {
		return ClassificationResult{Intent: IntentUnknown, Confidence: ConfidenceNone}
	}

	// Self-introduction patterns run ahead of the rule list so
	// "my name is X" is an introduction, not a name query.
	if isNameIntroduction(norm, tokens) {
		return ClassificationResult{Intent: IntentNameIntroduction, Confidence: ConfidenceDefault}
	}

	for _, rule := range c.rules {
		if ruleMatches(rule, norm, tokens) {
			return ClassificationResult{Intent: rule.Intent, Confidence: rule.Confidence}
		}
	}

	return ClassificationResult{Intent: IntentUnknown, Confidence: ConfidenceNone}
}

func ruleMatches(rule IntentRule, norm string, tokens []string) bool {
	switch rule.Kind {
	case MatchContains:
		for _, kw := range rule.Keywords {
			if strings.Contains(norm, kw) {
				return true
			}
		}
	case MatchWord:
		for _, kw := range rule.Keywords {
			for _, tok := range tokens {
				if tok == kw {
					return true
				}
			}
		}
	case MatchLeadToken:
		for _, kw := range rule.Keywords {
			if tokens[0] == kw {
				return true
			}
		}
	}
	return false
}

// normalizeUtterance lower-cases and trims. All matching happens on
// the normalized form.
func normalizeUtterance(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tokenize splits normalized text into alphanumeric runs, so
// "what's my name?" becomes [what s my name].
func tokenize(norm string) []string {
	return strings.FieldsFunc(norm, func(r rune) bool {
		return !isAlphanumeric(r)
	})
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isQuestionLead(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0] {
	case "what", "how", "why", "when", "where", "who":
		return true
	}
	return false
}
