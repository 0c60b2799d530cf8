package domain

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ManifestService is the echoed CoreInputs block of a manifest. The
// credential only ever appears redacted.
type ManifestService struct {
	Name        string      `yaml:"name" json:"name"`
	Type        ServiceType `yaml:"type" json:"type"`
	Domain      string      `yaml:"domain" json:"domain"`
	AccountID   string      `yaml:"account_id" json:"account_id"`
	ZoneID      string      `yaml:"zone_id" json:"zone_id"`
	Environment Environment `yaml:"environment" json:"environment"`
	Credential  string      `yaml:"credential" json:"credential"`
}

// ServiceManifest records what one generation run produced. Written
// last, after every generator succeeded; read later by validation
// (as expectations) and by discovery (as a hint only).
type ServiceManifest struct {
	GeneratedAt          time.Time           `yaml:"generated_at" json:"generated_at"`
	ToolVersion          string              `yaml:"tool_version" json:"tool_version"`
	CommitHash           string              `yaml:"commit_hash,omitempty" json:"commit_hash,omitempty"`
	Service              ManifestService     `yaml:"service" json:"service"`
	DerivedValues        []DerivedValue      `yaml:"derived_values" json:"derived_values"`
	Modifications        []Modification      `yaml:"user_modifications,omitempty" json:"user_modifications,omitempty"`
	Files                map[string][]string `yaml:"files" json:"files"`
	SkippedFiles         []string            `yaml:"skipped_files,omitempty" json:"skipped_files,omitempty"`
	Checksum             string              `yaml:"checksum" json:"checksum"`
	ExpectedCapabilities []string            `yaml:"expected_capabilities" json:"expected_capabilities"`
}

// AllFiles flattens the per-category lists.
func (m *ServiceManifest) AllFiles() []string {
	var all []string
	for _, paths := range m.Files {
		all = append(all, paths...)
	}
	sort.Strings(all)
	return all
}

// PathChecksum hashes the sorted, de-duplicated path list. It detects
// files appearing or disappearing between runs, never content drift.
func PathChecksum(paths []string) string {
	uniq := make(map[string]bool, len(paths))
	for _, p := range paths {
		uniq[p] = true
	}
	sorted := make([]string, 0, len(uniq))
	for p := range uniq {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return fmt.Sprintf("%x", sum)
}

// OrderedDerivedValues flattens a derived-value map in declaration
// order for stable manifest output.
func OrderedDerivedValues(values map[string]DerivedValue) []DerivedValue {
	out := make([]DerivedValue, 0, len(DerivedIDs))
	for _, id := range DerivedIDs {
		if v, ok := values[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

// DerivedValueMap rebuilds the map form from a manifest's flat list.
func DerivedValueMap(values []DerivedValue) map[string]DerivedValue {
	out := make(map[string]DerivedValue, len(values))
	for _, v := range values {
		out[v.ID] = v
	}
	return out
}
