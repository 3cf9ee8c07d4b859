// Package faq answers free-text questions from a fixed knowledge base.
//
// A query is checked against a few intent triggers first (sensitive topics,
// greetings, thanks, closings) and otherwise scored against every entry by
// counting the distinct tokens it shares with the entry's keywords and content.
package faq

import (
	"strings"
)

const (
	RefusalMessage  = "I'm sorry, but I can't help with passwords, keys or other confidential information. If you have trouble signing in, please use the 'Forgot Password' link on the login page."
	GreetingMessage = "Hello! I'm your AI Physiotherapy Assistant. How can I help you today with our services or clinic information?"
	ThanksMessage   = "You're most welcome! Is there anything else I can assist you with regarding your physiotherapy needs?"
	FarewellMessage = "Alright, feel free to reach out if you have more questions later. Have a great day!"
	ClarifyMessage  = "I can help with questions about our physiotherapy services, booking appointments, clinic location, or contact details. Could you please specify what you're looking for?"
	FallbackMessage = "I apologize, but I couldn't find a direct answer to that in my knowledge base. My purpose is to assist with questions related to physiotherapy services and our clinic. Could you please ask something else or rephrase your question?"
)

// Outcome names the rule that produced an answer.
type Outcome string

const (
	OutcomeRefused  Outcome = "refused"
	OutcomeGreeting Outcome = "greeting"
	OutcomeThanks   Outcome = "thanks"
	OutcomeClosing  Outcome = "closing"
	OutcomeMatched  Outcome = "matched"
	OutcomeClarify  Outcome = "clarify"
	OutcomeFallback Outcome = "fallback"
)

// Outcomes lists every outcome in rule order.
var Outcomes = []Outcome{
	OutcomeRefused, OutcomeGreeting, OutcomeThanks, OutcomeClosing,
	OutcomeMatched, OutcomeClarify, OutcomeFallback,
}

// Substring containment, not word matching: "passwordless" is refused too.
var sensitiveTerms = []string{"password", "api key", "secret", "private", "confidential"}

var (
	greetingPattern = wordPattern("hello", "hi", "hey", "greetings")
	thanksPattern   = wordPattern("thank you", "thanks", "appreciate")
	closingPattern  = wordPattern("nothing else", "no more", "bye", "goodbye")
	domainPattern   = wordPattern("physiotherapy", "clinic", "services", "appointment")
)

// MatchResult is the best scoring entry for a query. Entry is nil when no
// entry shares a token with the query.
type MatchResult struct {
	Entry *Entry
	Score int
}

// Found reports whether an entry scored above zero.
func (m MatchResult) Found() bool {
	return m.Entry != nil && m.Score > 0
}

// Answer is a reply together with how it was chosen.
type Answer struct {
	Text    string
	Outcome Outcome
	Match   MatchResult
}

// Responder is safe for concurrent use; it never mutates its knowledge base.
type Responder struct {
	kb *KnowledgeBase
}

func NewResponder(kb *KnowledgeBase) *Responder {
	return &Responder{kb: kb}
}

// KnowledgeBase returns the knowledge base the responder searches.
func (r *Responder) KnowledgeBase() *KnowledgeBase {
	return r.kb
}

// Respond returns the reply for query.
func (r *Responder) Respond(query string) string {
	return r.Answer(query).Text
}

// Answer runs the rules in order: sensitive guard, greeting, thanks, closing,
// keyword scoring, then the two fallbacks.
func (r *Responder) Answer(query string) Answer {
	lower := strings.ToLower(query)

	for _, term := range sensitiveTerms {
		if strings.Contains(lower, term) {
			return Answer{Text: RefusalMessage, Outcome: OutcomeRefused}
		}
	}

	switch {
	case greetingPattern.MatchString(lower):
		return Answer{Text: GreetingMessage, Outcome: OutcomeGreeting}
	case thanksPattern.MatchString(lower):
		return Answer{Text: ThanksMessage, Outcome: OutcomeThanks}
	case closingPattern.MatchString(lower):
		return Answer{Text: FarewellMessage, Outcome: OutcomeClosing}
	}

	match := r.match(lower)
	if match.Found() {
		return Answer{Text: match.Entry.Content, Outcome: OutcomeMatched, Match: match}
	}

	if domainPattern.MatchString(lower) {
		return Answer{Text: ClarifyMessage, Outcome: OutcomeClarify, Match: match}
	}
	return Answer{Text: FallbackMessage, Outcome: OutcomeFallback, Match: match}
}

// Classify reports which rule answers query.
func (r *Responder) Classify(query string) Outcome {
	return r.Answer(query).Outcome
}

// Match scores query against every entry, skipping the intent triggers.
func (r *Responder) Match(query string) MatchResult {
	return r.match(strings.ToLower(query))
}

func (r *Responder) match(lower string) MatchResult {
	queryTokens := tokenSet(lower)

	if len(queryTokens) == 0 {
		return MatchResult{}
	}

	bestIdx, bestScore := -1, 0
	for i := range r.kb.entries {
		score := overlap(queryTokens, r.kb.entries[i].terms)
		// Strict comparison: the earliest entry wins a tie.
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 {
		return MatchResult{}
	}
	entry := r.kb.entries[bestIdx].entry.clone()
	return MatchResult{Entry: &entry, Score: bestScore}
}

func overlap(query, terms map[string]struct{}) int {
	n := 0
	for t := range query {
		if _, ok := terms[t]; ok {
			n++
		}
	}
	return n
}
