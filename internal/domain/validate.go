package domain

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Shape predicates for core inputs and derived-value overrides.
// These are pure and never touch the filesystem or network.

var (
	slugRe       = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)
	hexIDRe      = regexp.MustCompile(`^[0-9a-f]{32}$`)
	apiTokenRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{40}$`)
	dnsLabelRe   = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	snakeRe      = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	upperSnakeRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	branchRe     = regexp.MustCompile(`^[A-Za-z0-9._/-]+$`)
	npmNameRe    = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
)

// IsSlug reports whether s is a lowercase kebab-case identifier
// within the given length bounds.
func IsSlug(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	return slugRe.MatchString(s)
}

// IsServiceName checks the 3-50 char service slug.
func IsServiceName(s string) bool { return IsSlug(s, 3, 50) }

// IsDNSName validates a dotted domain name (at least two labels,
// each label <= 63 chars, total <= 253).
func IsDNSName(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	labels := strings.Split(strings.ToLower(s), ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if len(l) == 0 || len(l) > 63 || !dnsLabelRe.MatchString(l) {
			return false
		}
	}
	return true
}

// IsHexID validates the fixed-length hex account/zone identifiers.
func IsHexID(s string) bool { return hexIDRe.MatchString(s) }

// IsAPIToken validates the shape of a platform API token.
// Only the shape: the token is opaque and never verified here.
func IsAPIToken(s string) bool { return apiTokenRe.MatchString(s) }

// IsHTTPURL reports whether s parses as an absolute http or https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsRootedPath reports whether s is a non-empty path starting with "/".
func IsRootedPath(s string) bool {
	return len(s) > 1 && strings.HasPrefix(s, "/") && !strings.Contains(s, " ")
}

// IsSnakeName validates lowercase snake_case resource names.
func IsSnakeName(s string) bool { return snakeRe.MatchString(s) }

// IsUpperSnakeName validates UPPER_SNAKE binding names.
func IsUpperSnakeName(s string) bool { return upperSnakeRe.MatchString(s) }

// IsBranchName validates a git branch reference name.
func IsBranchName(s string) bool {
	if s == "" || strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") || strings.Contains(s, "..") {
		return false
	}
	return branchRe.MatchString(s)
}

// IsNPMName validates an npm package name, scoped or bare.
func IsNPMName(s string) bool {
	return len(s) > 0 && len(s) <= 214 && npmNameRe.MatchString(s)
}

// IsDisplayName accepts any printable single-line string of 1-80 runes.
func IsDisplayName(s string) bool {
	if s == "" || len([]rune(s)) > 80 {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// IsOriginList validates a comma-separated list of http(s) origins.
func IsOriginList(s string) bool {
	if s == "" {
		return false
	}
	for _, o := range strings.Split(s, ",") {
		if !IsHTTPURL(strings.TrimSpace(o)) {
			return false
		}
	}
	return true
}
