package botsdk

import (
	"strings"
	"testing"
)

// ══════════════════════════════════════════════
// BotBuilder tests
// ══════════════════════════════════════════════

func TestBuild_Defaults(t *testing.T) {
	bot, err := NewBotBuilder("support_bot").Build()
	if err != nil {
		t.Fatalf("default build must succeed: %v", err)
	}
	if bot.Name() != "support_bot" {
		t.Fatalf("name off: %s", bot.Name())
	}
}

func TestBuild_CustomIntent(t *testing.T) {
	bot, err := NewBotBuilder("support_bot").
		Rule(IntentRule{Intent: "refund", Kind: MatchWord, Keywords: []string{"refund"}, Confidence: 0.85}).
		Template("refund", "I can start a refund for you.").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	conv := bot.NewConversation()
	resp, err := conv.Send("I want a refund")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(resp, "refund") {
		t.Fatalf("custom intent not wired: %q", resp)
	}
	if conv.History()[0].Intent != Intent("refund") {
		t.Fatalf("classified as %s", conv.History()[0].Intent)
	}
}

func TestBuild_RejectsKeywordlessRule(t *testing.T) {
	_, err := NewBotBuilder("b").
		Rule(IntentRule{Intent: "refund", Kind: MatchWord, Confidence: 0.85}).
		Build()
	if err == nil {
		t.Fatal("expected error for rule without keywords")
	}
}

func TestBuild_RejectsUnknownWithKeywords(t *testing.T) {
	_, err := NewBotBuilder("b").
		Rule(IntentRule{Intent: IntentUnknown, Kind: MatchWord, Keywords: []string{"huh"}, Confidence: 0.5}).
		Build()
	if err == nil {
		t.Fatal("unknown is the fallback and must not carry keywords")
	}
}

func TestBuild_RejectsRuleWithoutTemplate(t *testing.T) {
	_, err := NewBotBuilder("b").
		Rule(IntentRule{Intent: "refund", Kind: MatchWord, Keywords: []string{"refund"}, Confidence: 0.85}).
		Build()
	if err == nil {
		t.Fatal("expected error for keyworded intent without template")
	}
	if !strings.Contains(err.Error(), "refund") {
		t.Fatalf("error should name the intent: %v", err)
	}
}

func TestBuild_RejectsDuplicateRule(t *testing.T) {
	_, err := NewBotBuilder("b").
		Rule(IntentRule{Intent: "refund", Kind: MatchWord, Keywords: []string{"refund"}, Confidence: 0.85}).
		Rule(IntentRule{Intent: "refund", Kind: MatchWord, Keywords: []string{"money back"}, Confidence: 0.85}).
		Template("refund", "I can start a refund for you.").
		Build()
	if err == nil {
		t.Fatal("expected error for duplicate (intent, kind) rule")
	}
}

func TestBuild_RejectsBadConfidence(t *testing.T) {
	for _, conf := range []float64{0, -0.5, 1.5} {
		_, err := NewBotBuilder("b").
			Rule(IntentRule{Intent: "refund", Kind: MatchWord, Keywords: []string{"refund"}, Confidence: conf}).
			Template("refund", "I can start a refund for you.").
			Build()
		if err == nil {
			t.Fatalf("expected error for confidence %v", conf)
		}
	}
}

func TestBuild_RejectsMissingUnknownTemplate(t *testing.T) {
	templates := DefaultTemplates()
	delete(templates, IntentUnknown)

	b := NewBotBuilder("b")
	b.templates = templates
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error when the fallback template is missing")
	}
}

func TestBuild_ReplacedRulesChangePriority(t *testing.T) {
	// A catalog where help outranks thanks flips the tie-break.
	rules := []IntentRule{
		{Intent: IntentHelp, Kind: MatchWord, Keywords: []string{"help"}, Confidence: 0.85},
		{Intent: IntentThanks, Kind: MatchWord, Keywords: []string{"thanks", "thank"}, Confidence: 0.95},
	}
	bot, err := NewBotBuilder("b").Rules(rules).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	conv := bot.NewConversation()
	if _, err := conv.Send("Thanks for your help"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := conv.History()[0].Intent; got != IntentHelp {
		t.Fatalf("expected help to win under the custom order, got %s", got)
	}
}
