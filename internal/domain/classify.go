package domain

import "strings"

// Severity buckets for classified failures.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// ErrorContext tells the classifier where a failure happened so the
// suggestions can be operation-specific.
type ErrorContext struct {
	Operation string // e.g. "create", "deploy", "update", "discover"
	Subject   string // offending field or generator, when known
}

// Classified is the classifier's verdict: a severity tag plus recovery
// hints. Text only; any retry or auto-fix is the caller's business.
type Classified struct {
	Severity    string   `json:"severity"`
	Suggestions []string `json:"suggestions"`
}

type classifyRule struct {
	keywords []string
	severity string
	hints    []string
}

// Rules are matched first-to-last against the lowercased message.
var classifyRules = []classifyRule{
	{
		keywords: []string{"authentication", "unauthorized", "permission", "forbidden", "credential"},
		severity: SeverityCritical,
		hints: []string{
			"Check that the API credential is current and has the required scopes",
			"Confirm the account and zone identifiers match the credential's account",
		},
	},
	{
		keywords: []string{"network", "timeout", "timed out", "connection refused", "dns"},
		severity: SeverityHigh,
		hints: []string{
			"Retry once connectivity is restored",
			"Check proxy or firewall settings for the platform API host",
		},
	},
	{
		keywords: []string{"validation", "invalid", "must be"},
		severity: SeverityHigh,
		hints: []string{
			"Correct the named field and run again",
		},
	},
	{
		keywords: []string{"deprecated", "not found", "no such"},
		severity: SeverityMedium,
		hints: []string{
			"Verify the referenced resource still exists on the platform",
		},
	},
}

var operationHints = map[string][]string{
	"create": {"Re-run with --overwrite if you intend to replace existing files"},
	"update": {"Re-run discovery first so the update starts from current state"},
	"deploy": {"Check the deployment descriptor before retrying the deploy"},
}

// Classify assigns a severity and recovery suggestions to a failure.
// Pattern rules are fixed; unknown errors classify low with no hints
// beyond the operation-specific ones.
func Classify(err error, ctx ErrorContext) Classified {
	out := Classified{Severity: SeverityLow}
	if err == nil {
		return out
	}
	msg := strings.ToLower(err.Error())

	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				out.Severity = rule.severity
				out.Suggestions = append(out.Suggestions, rule.hints...)
				break
			}
		}
		if out.Severity != SeverityLow {
			break
		}
	}

	if hints, ok := operationHints[ctx.Operation]; ok {
		out.Suggestions = append(out.Suggestions, hints...)
	}
	return out
}
