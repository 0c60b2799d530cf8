package domain

import (
	"fmt"
	"strings"
)

// DerivedValue is one of the 15 confirmable configuration values
// computed from CoreInputs. UserModified holds exactly when the
// current value differs from the computed default.
type DerivedValue struct {
	ID           string `json:"id" yaml:"id"`
	Default      string `json:"default" yaml:"default"`
	Current      string `json:"current" yaml:"current"`
	UserModified bool   `json:"user_modified" yaml:"user_modified"`
}

// The fixed set of derived value ids, in declaration order.
// No derived value may be invented outside this list.
var DerivedIDs = []string{
	"display-name",
	"worker-name",
	"production-url",
	"staging-url",
	"development-url",
	"api-base-path",
	"health-endpoint",
	"route-pattern",
	"database-name",
	"kv-namespace",
	"storage-bucket",
	"package-name",
	"log-level",
	"deploy-branch",
	"cors-origins",
}

// derivers computes the default for each id. Every function here is
// pure and total over validated CoreInputs: a validated input that
// fails to derive is a defect, not a runtime error.
var derivers = map[string]func(CoreInputs) string{
	"display-name": func(c CoreInputs) string { return TitleizeSlug(c.ServiceName) },
	"worker-name": func(c CoreInputs) string {
		if c.Environment == EnvProduction {
			return c.ServiceName
		}
		return c.ServiceName + "-" + string(c.Environment)
	},
	"production-url": func(c CoreInputs) string {
		return fmt.Sprintf("https://%s.%s", c.ServiceName, c.DomainName)
	},
	"staging-url": func(c CoreInputs) string {
		return fmt.Sprintf("https://staging-%s.%s", c.ServiceName, c.DomainName)
	},
	"development-url": func(CoreInputs) string { return "http://localhost:8787" },
	"api-base-path":   func(CoreInputs) string { return "/api/v1" },
	"health-endpoint": func(CoreInputs) string { return "/health" },
	"route-pattern": func(c CoreInputs) string {
		return fmt.Sprintf("%s.%s/*", c.ServiceName, c.DomainName)
	},
	"database-name": func(c CoreInputs) string {
		return strings.ReplaceAll(c.ServiceName, "-", "_") + "_db"
	},
	"kv-namespace": func(c CoreInputs) string {
		return strings.ToUpper(strings.ReplaceAll(c.ServiceName, "-", "_")) + "_CACHE"
	},
	"storage-bucket": func(c CoreInputs) string { return c.ServiceName + "-assets" },
	"package-name":   func(c CoreInputs) string { return c.ServiceName },
	"log-level": func(c CoreInputs) string {
		switch c.Environment {
		case EnvProduction:
			return "warn"
		case EnvStaging:
			return "info"
		default:
			return "debug"
		}
	},
	"deploy-branch": func(c CoreInputs) string {
		switch c.Environment {
		case EnvProduction:
			return "main"
		case EnvStaging:
			return "staging"
		default:
			return "develop"
		}
	},
	"cors-origins": func(c CoreInputs) string {
		return fmt.Sprintf("https://%s,https://www.%s", c.DomainName, c.DomainName)
	},
}

// overrideValidators re-check operator replacements per field.
var overrideValidators = map[string]func(string) error{
	"display-name":    validator(IsDisplayName, "must be 1-80 printable chars"),
	"worker-name":     validator(func(s string) bool { return IsSlug(s, 1, 63) }, "must be a slug of at most 63 chars"),
	"production-url":  validator(IsHTTPURL, "must be an absolute http(s) URL"),
	"staging-url":     validator(IsHTTPURL, "must be an absolute http(s) URL"),
	"development-url": validator(IsHTTPURL, "must be an absolute http(s) URL"),
	"api-base-path":   validator(IsRootedPath, "must start with /"),
	"health-endpoint": validator(IsRootedPath, "must start with /"),
	"route-pattern": validator(func(s string) bool { return strings.Contains(s, "/") }, "must contain a path part"),
	"database-name":  validator(IsSnakeName, "must be snake_case"),
	"kv-namespace":   validator(IsUpperSnakeName, "must be UPPER_SNAKE"),
	"storage-bucket": validator(func(s string) bool { return IsSlug(s, 3, 63) }, "must be a 3-63 char slug"),
	"package-name":   validator(IsNPMName, "must be a valid npm package name"),
	"log-level": validator(func(s string) bool {
		return s == "debug" || s == "info" || s == "warn" || s == "error"
	}, "must be one of debug, info, warn, error"),
	"deploy-branch": validator(IsBranchName, "must be a valid branch name"),
	"cors-origins":  validator(IsOriginList, "must be comma-separated http(s) origins"),
}

func validator(pred func(string) bool, reason string) func(string) error {
	return func(s string) error {
		if !pred(s) {
			return fmt.Errorf("%s", reason)
		}
		return nil
	}
}

// Derive computes all 15 derived values for validated inputs.
// Pure and total; calling it twice yields identical results.
func Derive(in CoreInputs) map[string]DerivedValue {
	out := make(map[string]DerivedValue, len(DerivedIDs))
	for _, id := range DerivedIDs {
		def := derivers[id](in)
		out[id] = DerivedValue{ID: id, Default: def, Current: def}
	}
	return out
}

// Modification records one accepted operator override, kept for
// transparency reporting. It never feeds back into derivation:
// overriding one field does not recompute any other.
type Modification struct {
	Field   string `json:"field" yaml:"field"`
	Assumed string `json:"assumed" yaml:"assumed"`
	Chosen  string `json:"chosen" yaml:"chosen"`
}

// ApplyOverride validates and applies a replacement for one derived
// value. A failing validation leaves the set untouched and returns the
// reason; an accepted override returns the Modification log entry.
func ApplyOverride(values map[string]DerivedValue, id, replacement string) (Modification, error) {
	v, ok := values[id]
	if !ok {
		return Modification{}, fmt.Errorf("unknown derived value %q", id)
	}
	if err := overrideValidators[id](replacement); err != nil {
		return Modification{}, fmt.Errorf("invalid value for %s: %w", id, err)
	}
	prior := v.Current
	v.Current = replacement
	v.UserModified = replacement != v.Default
	values[id] = v
	return Modification{Field: id, Assumed: prior, Chosen: replacement}, nil
}

// Value returns the current value for id, or "" if absent.
func Value(values map[string]DerivedValue, id string) string {
	return values[id].Current
}

// TitleizeSlug converts a kebab slug to a display name, upper-casing
// well-known acronyms ("billing-api" -> "Billing API").
func TitleizeSlug(slug string) string {
	acronyms := map[string]string{
		"api": "API", "db": "DB", "id": "ID", "url": "URL", "cdn": "CDN",
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if up, ok := acronyms[w]; ok {
			words[i] = up
		} else if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
