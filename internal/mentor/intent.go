package mentor

import "strings"

// Intent classifies a user message for the deterministic fallback reply.
// This is substring matching over the message text, not a learned model,
// so it stays independently testable.
type Intent int

const (
	IntentGeneric Intent = iota
	IntentMotivation
	IntentNextSteps
	IntentScheduling
)

func (i Intent) String() string {
	switch i {
	case IntentMotivation:
		return "motivation"
	case IntentNextSteps:
		return "next-steps"
	case IntentScheduling:
		return "scheduling"
	default:
		return "generic"
	}
}

// DetectIntent maps a message to an intent via case-insensitive
// substring matching. First match wins in the order below.
func DetectIntent(message string) Intent {
	m := strings.ToLower(message)
	switch {
	case containsAny(m, "motivat", "stuck", "give up", "frustrat", "discourag"):
		return IntentMotivation
	case containsAny(m, "schedule", "plan", "deadline", "when should"):
		return IntentScheduling
	case containsAny(m, "next step", "what next", "what should i learn", "recommend", "which course"):
		return IntentNextSteps
	default:
		return IntentGeneric
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cannedReplies are the fixed fallback responses, keyed by intent.
var cannedReplies = map[Intent]string{
	IntentMotivation: "Feeling stuck is a normal part of learning, and it usually means you're pushing into new territory. " +
		"Try breaking your current topic into one small piece you can finish today. Completing even a 20-minute session rebuilds momentum.",
	IntentScheduling: "A consistent schedule beats an ambitious one. Pick two or three fixed time slots this week, add them to your learning schedule here, " +
		"and keep each session focused on a single course. You can mark tasks complete as you go.",
	IntentNextSteps: "A good next step is to retake a quiz in your strongest domain to confirm your level, then pick one recommended course and enroll. " +
		"Working through one course at a time tends to stick better than sampling many.",
	IntentGeneric: "I'm here to help with your learning journey. You can ask me about your courses, your quiz results, study plans, " +
		"or what to learn next in any of your chosen domains.",
}

// FallbackReply returns the canned response for the message's intent.
func FallbackReply(message string) string {
	return cannedReplies[DetectIntent(message)]
}
