package capability

import (
	"math"
	"sort"
)

// Recommendation priorities, highest first.
const (
	PrioritySecurity    = "security"
	PrioritySetup       = "setup"
	PriorityEnhancement = "enhancement"
)

var priorityRank = map[string]int{
	PrioritySecurity:    0,
	PrioritySetup:       1,
	PriorityEnhancement: 2,
}

// maxRecommendations caps the ranked list.
const maxRecommendations = 5

// Recommendation is one ranked improvement suggestion.
type Recommendation struct {
	Priority string `json:"priority" yaml:"priority"`
	Slot     Slot   `json:"slot" yaml:"slot"`
	Message  string `json:"message" yaml:"message"`
}

// Assessment is the maturity verdict for a capability model.
// Recomputed on demand, never cached across discovery runs.
type Assessment struct {
	Completeness        int              `json:"completeness" yaml:"completeness"`
	Maturity            string           `json:"maturity" yaml:"maturity"`
	MissingCapabilities []Slot           `json:"missing_capabilities" yaml:"missing_capabilities"`
	Recommendations     []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// MaturityFor buckets a completeness score.
func MaturityFor(completeness int) string {
	switch {
	case completeness >= 80:
		return "mature"
	case completeness >= 50:
		return "developing"
	default:
		return "basic"
	}
}

// Assess scores a model. Completeness counts required slots only so a
// service that legitimately needs no database is not penalized.
func Assess(m Model) Assessment {
	configured := 0
	var missing []Slot
	for _, s := range Required {
		if m[s].Configured {
			configured++
		} else {
			missing = append(missing, s)
		}
	}
	completeness := int(math.Round(100 * float64(configured) / float64(len(Required))))

	return Assessment{
		Completeness:        completeness,
		Maturity:            MaturityFor(completeness),
		MissingCapabilities: missing,
		Recommendations:     recommend(m),
	}
}

type recommendRule struct {
	slot     Slot
	priority string
	message  string
}

// Fixed recommendation rules, keyed on unconfigured slots. Evaluated
// in slot declaration order so output is deterministic.
var recommendRules = map[Slot]recommendRule{
	Deployment:     {Deployment, PrioritySetup, "Add a wrangler.toml deployment descriptor"},
	Framework:      {Framework, PrioritySetup, "Add a routing framework (e.g. hono) to package.json"},
	Security:       {Security, PrioritySecurity, "Add security middleware (headers, rate limiting)"},
	Authentication: {Authentication, PriorityEnhancement, "Consider an authentication layer for protected routes"},
	Database:       {Database, PriorityEnhancement, "Bind a database if the service owns data"},
	Storage:        {Storage, PriorityEnhancement, "Bind a KV namespace or bucket for cached or static data"},
	Monitoring:     {Monitoring, PriorityEnhancement, "Add an analytics or error-tracking integration"},
}

func recommend(m Model) []Recommendation {
	var recs []Recommendation
	for _, slot := range Slots {
		rule, ok := recommendRules[slot]
		if !ok || m[slot].Configured {
			continue
		}
		recs = append(recs, Recommendation{
			Priority: rule.priority,
			Slot:     rule.slot,
			Message:  rule.message,
		})
	}

	// Stable rank: priority first, then slot declaration order.
	slotIndex := make(map[Slot]int, len(Slots))
	for i, s := range Slots {
		slotIndex[s] = i
	}
	sort.SliceStable(recs, func(a, b int) bool {
		if priorityRank[recs[a].Priority] != priorityRank[recs[b].Priority] {
			return priorityRank[recs[a].Priority] < priorityRank[recs[b].Priority]
		}
		return slotIndex[recs[a].Slot] < slotIndex[recs[b].Slot]
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
