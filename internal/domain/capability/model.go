// Package capability holds the shared vocabulary of the forward
// (generation) and backward (discovery) paths: the fixed capability
// slots, the analysis contributions that fill them, and the
// fixed-precedence merge.
package capability

import "github.com/tamylaa/clodo-framework-sub007/internal/domain"

// Slot names one platform capability.
type Slot string

const (
	Deployment     Slot = "deployment"
	Database       Slot = "database"
	Storage        Slot = "storage"
	Messaging      Slot = "messaging"
	Authentication Slot = "authentication"
	Framework      Slot = "framework"
	Security       Slot = "security"
	Monitoring     Slot = "monitoring"
)

// Slots in declaration order; ties everywhere break on this order.
var Slots = []Slot{
	Deployment,
	Database,
	Storage,
	Messaging,
	Authentication,
	Framework,
	Security,
	Monitoring,
}

// Required slots drive the completeness score. Optional slots only
// influence recommendations.
var Required = []Slot{Deployment, Framework}

// State is one slot's discovered condition. Possible means the
// credential or layout hints the capability could be enabled even
// though no configuration was found.
type State struct {
	Configured bool   `json:"configured" yaml:"configured"`
	Possible   bool   `json:"possible" yaml:"possible"`
	Provider   string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Quantity   int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// Model maps every slot to its state. Built fresh on each discovery
// run; never persisted as a source of truth.
type Model map[Slot]State

// NewModel returns the fully-defaulted model: every slot unconfigured.
func NewModel() Model {
	m := make(Model, len(Slots))
	for _, s := range Slots {
		m[s] = State{}
	}
	return m
}

// ConfiguredSlots lists configured slots in declaration order.
func (m Model) ConfiguredSlots() []Slot {
	var out []Slot
	for _, s := range Slots {
		if m[s].Configured {
			out = append(out, s)
		}
	}
	return out
}

// Contribution is one analysis's partial claim about a slot.
type Contribution struct {
	Slot       Slot
	Configured bool
	Possible   bool
	Provider   string
	Quantity   int
}

// AnalysisResult is the named output of one discovery analysis.
type AnalysisResult struct {
	Name          string
	Contributions []Contribution
}

// Precedence is the declared merge order of discovery's four
// analyses. The merge walks this list, never completion order, so a
// concurrent discovery run is deterministic.
var Precedence = []string{
	"descriptor",
	"dependencies",
	"layout",
	"permissions",
}

// Merge combines analysis results by fixed precedence. The first
// configuring contribution for a slot wins provider and quantity;
// possible is sticky across all analyses.
func Merge(results []AnalysisResult) Model {
	m := NewModel()

	byName := make(map[string]AnalysisResult, len(results))
	for _, r := range results {
		byName[r.Name] = r
	}

	for _, name := range Precedence {
		r, ok := byName[name]
		if !ok {
			continue
		}
		for _, c := range r.Contributions {
			st := m[c.Slot]
			if c.Configured && !st.Configured {
				st.Configured = true
				st.Provider = c.Provider
				st.Quantity = c.Quantity
			}
			if c.Configured || c.Possible {
				st.Possible = true
			}
			m[c.Slot] = st
		}
	}
	return m
}

// ExpectedFor returns the capability slots a generated service of the
// given type is expected to re-discover. Recorded in the manifest and
// cross-checked by validation.
func ExpectedFor(t domain.ServiceType) []Slot {
	base := []Slot{Deployment, Framework}
	switch t {
	case domain.ServiceTypeData:
		return append(base, Database, Storage)
	case domain.ServiceTypeAuth:
		return append(base, Storage, Authentication)
	case domain.ServiceTypeContent:
		return append(base, Storage)
	case domain.ServiceTypeGateway:
		return append(base, Messaging)
	default:
		return base
	}
}

// SlotNames converts slots to their string form for manifests.
func SlotNames(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s)
	}
	return out
}
