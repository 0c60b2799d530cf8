package domain

import (
	"fmt"
	"strings"
)

// ServiceType classifies what kind of service is being scaffolded.
// The type decides which platform bindings the generators emit.
type ServiceType string

const (
	ServiceTypeData    ServiceType = "data-service"
	ServiceTypeAuth    ServiceType = "auth-service"
	ServiceTypeContent ServiceType = "content-service"
	ServiceTypeGateway ServiceType = "api-gateway"
	ServiceTypeGeneric ServiceType = "generic"
)

var ValidServiceTypes = []ServiceType{
	ServiceTypeData,
	ServiceTypeAuth,
	ServiceTypeContent,
	ServiceTypeGateway,
	ServiceTypeGeneric,
}

// Environment is the target deployment environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

var ValidEnvironments = []Environment{EnvDevelopment, EnvStaging, EnvProduction}

// CoreInputs are the 7 facts required before any derivation runs.
// Immutable once collection completes.
type CoreInputs struct {
	ServiceName   string      `json:"service_name" yaml:"service_name"`
	ServiceType   ServiceType `json:"service_type" yaml:"service_type"`
	DomainName    string      `json:"domain_name" yaml:"domain_name"`
	APICredential string      `json:"-" yaml:"-"`
	AccountID     string      `json:"account_id" yaml:"account_id"`
	ZoneID        string      `json:"zone_id" yaml:"zone_id"`
	Environment   Environment `json:"environment" yaml:"environment"`
}

// FieldError names a single violated input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

// InputError aggregates every violated field so programmatic callers
// see all problems at once instead of one at a time.
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid core inputs: " + strings.Join(msgs, "; ")
}

// Validate checks all 7 fields as a unit. Returns *InputError listing
// every violation, or nil when the inputs are usable for derivation.
func (c CoreInputs) Validate() error {
	var fields []FieldError

	if !IsServiceName(c.ServiceName) {
		fields = append(fields, FieldError{"serviceName", "must be a 3-50 char slug (lowercase, digits, hyphen)"})
	}
	if !isValidServiceType(c.ServiceType) {
		fields = append(fields, FieldError{"serviceType", fmt.Sprintf("unknown type %q (valid: %s)", c.ServiceType, joinServiceTypes())})
	}
	if !IsDNSName(c.DomainName) {
		fields = append(fields, FieldError{"domainName", "must be a valid DNS name"})
	}
	if !IsAPIToken(c.APICredential) {
		fields = append(fields, FieldError{"apiCredential", "must be a 40 char token of letters, digits, - or _"})
	}
	if !IsHexID(c.AccountID) {
		fields = append(fields, FieldError{"accountId", "must be 32 lowercase hex chars"})
	}
	if !IsHexID(c.ZoneID) {
		fields = append(fields, FieldError{"zoneId", "must be 32 lowercase hex chars"})
	}
	if !isValidEnvironment(c.Environment) {
		fields = append(fields, FieldError{"environment", fmt.Sprintf("unknown environment %q (valid: development, staging, production)", c.Environment)})
	}

	if len(fields) > 0 {
		return &InputError{Fields: fields}
	}
	return nil
}

// RedactedCredential returns the credential in the only form that may
// ever be echoed or persisted: first 4 chars plus a fixed mask.
func (c CoreInputs) RedactedCredential() string {
	return RedactToken(c.APICredential)
}

// RedactToken masks an opaque token, keeping a 4-char prefix for
// recognition. Short or empty tokens redact fully.
func RedactToken(tok string) string {
	if len(tok) < 8 {
		return "****"
	}
	return tok[:4] + strings.Repeat("*", 8)
}

func isValidServiceType(t ServiceType) bool {
	for _, v := range ValidServiceTypes {
		if t == v {
			return true
		}
	}
	return false
}

func isValidEnvironment(e Environment) bool {
	for _, v := range ValidEnvironments {
		if e == v {
			return true
		}
	}
	return false
}

func joinServiceTypes() string {
	parts := make([]string, len(ValidServiceTypes))
	for i, t := range ValidServiceTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
