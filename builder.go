package botsdk

import (
	"fmt"
	"time"
)

// ──────────────────────────────────────────────
// Bot + BotBuilder — shared configuration, validated construction
// ──────────────────────────────────────────────

// Bot is an immutable bundle of classifier, generator, guard, and
// transcript store. One Bot spawns any number of fully isolated
// conversations; the per-session state lives on the Conversation.
type Bot struct {
	name       string
	classifier *IntentClassifier
	generator  *ResponseGenerator
	guard      *ResponseGuard
	store      TranscriptStore
}

// NewBot creates a bot with the built-in intent catalog, templates,
// quality guards, and an in-memory transcript store.
func NewBot() *Bot {
	bot, err := NewBotBuilder("mockbot").Build()
	if err != nil {
		// The built-in tables are validated by the test suite; a
		// failure here means the defaults themselves are broken.
		panic(err)
	}
	return bot
}

// Name returns the bot's configured name.
func (b *Bot) Name() string { return b.name }

// NewConversation spawns a fresh session against this bot's
// configuration. Sessions never share context or history.
func (b *Bot) NewConversation() *Conversation {
	return &Conversation{
		ID:         newConversationID(),
		classifier: b.classifier,
		generator:  b.generator,
		guard:      b.guard,
		store:      b.store,
		context:    NewContextStore(),
		state:      StateFresh,
		repetition: NewRepetitionDetector(),
		now:        time.Now,
	}
}

// BotBuilder assembles a Bot with a fluent API and cross-validates
// the intent and template tables at Build time, so a rule/template
// mismatch fails at construction instead of mid-conversation.
//
// Usage:
//
//	bot, err := botsdk.NewBotBuilder("support_bot").
//	    Rule(botsdk.IntentRule{Intent: "refund", Kind: botsdk.MatchWord, Keywords: []string{"refund"}, Confidence: 0.85}).
//	    Template("refund", "I can start a refund for you.").
//	    Build()
type BotBuilder struct {
	name      string
	rules     []IntentRule
	templates map[Intent]string
	guard     *ResponseGuard
	guardSet  bool
	store     TranscriptStore
}

// NewBotBuilder creates a builder seeded with the default catalog and
// templates.
func NewBotBuilder(name string) *BotBuilder {
	return &BotBuilder{
		name:      name,
		rules:     DefaultIntentRules(),
		templates: DefaultTemplates(),
	}
}

// Rules replaces the entire ordered rule set.
func (b *BotBuilder) Rules(rules []IntentRule) *BotBuilder {
	b.rules = rules
	return b
}

// Rule appends a rule at the end of the priority order.
func (b *BotBuilder) Rule(rule IntentRule) *BotBuilder {
	b.rules = append(b.rules, rule)
	return b
}

// Template sets or overrides the response template for an intent.
func (b *BotBuilder) Template(intent Intent, text string) *BotBuilder {
	b.templates[intent] = text
	return b
}

// WithGuard replaces the default response guard. Pass nil to disable
// output checks.
func (b *BotBuilder) WithGuard(g *ResponseGuard) *BotBuilder {
	b.guard = g
	b.guardSet = true
	return b
}

// WithStore sets the transcript store shared by this bot's
// conversations.
func (b *BotBuilder) WithStore(s TranscriptStore) *BotBuilder {
	b.store = s
	return b
}

// Build validates the configuration and assembles the Bot.
func (b *BotBuilder) Build() (*Bot, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	guard := b.guard
	if !b.guardSet {
		guard = NewResponseGuard()
	}
	store := b.store
	if store == nil {
		store = NewInMemoryTranscriptStore()
	}
	return &Bot{
		name:       b.name,
		classifier: NewIntentClassifier(b.rules),
		generator:  NewResponseGenerator(b.templates),
		guard:      guard,
		store:      store,
	}, nil
}

func (b *BotBuilder) validate() error {
	if b.name == "" {
		return fmt.Errorf("bot name is required")
	}

	seen := make(map[Intent]MatchKind)
	for _, rule := range b.rules {
		if rule.Intent == "" {
			return fmt.Errorf("rule intent is required")
		}
		if rule.Intent == IntentUnknown {
			return fmt.Errorf("intent %q is the fallback and must not carry keywords", IntentUnknown)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("rule for intent %q has no keywords", rule.Intent)
		}
		if rule.Confidence <= 0 || rule.Confidence > 1 {
			return fmt.Errorf("rule for intent %q has confidence %v, want (0, 1]", rule.Intent, rule.Confidence)
		}
		// The same intent may appear under several match kinds, but a
		// duplicate (intent, kind) pair is a table mistake.
		if kind, dup := seen[rule.Intent]; dup && kind == rule.Kind {
			return fmt.Errorf("duplicate rule for intent %q", rule.Intent)
		}
		seen[rule.Intent] = rule.Kind
	}

	// Every keyworded intent needs a template, and the unknown
	// fallback always needs one.
	for intent := range seen {
		if !templateCovered(intent, b.templates) {
			return fmt.Errorf("intent %q has keywords but no response template", intent)
		}
	}
	if _, ok := b.templates[IntentUnknown]; !ok {
		return fmt.Errorf("fallback intent %q has no response template", IntentUnknown)
	}

	return nil
}

// templateCovered reports whether the generator can answer intent —
// via a table entry or one of its built-in context branches.
func templateCovered(intent Intent, templates map[Intent]string) bool {
	switch intent {
	case IntentNameIntroduction, IntentNameQuery:
		return true
	}
	_, ok := templates[intent]
	return ok
}
