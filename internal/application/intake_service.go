package application

import (
	"fmt"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// maxAttempts bounds per-field re-prompting before collection fails.
const maxAttempts = 3

// IntakeService runs interactive collection: the 7 core inputs, then
// the confirmation pass over all 15 derived values.
type IntakeService struct {
	session domain.PromptSession
}

func NewIntakeService(session domain.PromptSession) *IntakeService {
	return &IntakeService{session: session}
}

type coreField struct {
	name   string
	prompt string
	assign func(*domain.CoreInputs, string)
	check  func(string) bool
	reason string
}

var coreFields = []coreField{
	{
		name:   "serviceName",
		prompt: "Service name (slug): ",
		assign: func(c *domain.CoreInputs, v string) { c.ServiceName = v },
		check:  domain.IsServiceName,
		reason: "must be a 3-50 char slug",
	},
	{
		name:   "serviceType",
		prompt: "Service type [data-service/auth-service/content-service/api-gateway/generic]: ",
		assign: func(c *domain.CoreInputs, v string) { c.ServiceType = domain.ServiceType(v) },
		check: func(v string) bool {
			for _, t := range domain.ValidServiceTypes {
				if domain.ServiceType(v) == t {
					return true
				}
			}
			return false
		},
		reason: "unknown service type",
	},
	{
		name:   "domainName",
		prompt: "Domain name: ",
		assign: func(c *domain.CoreInputs, v string) { c.DomainName = v },
		check:  domain.IsDNSName,
		reason: "must be a valid DNS name",
	},
	{
		name:   "apiCredential",
		prompt: "API credential: ",
		assign: func(c *domain.CoreInputs, v string) { c.APICredential = v },
		check:  domain.IsAPIToken,
		reason: "must be a 40 char token",
	},
	{
		name:   "accountId",
		prompt: "Account ID (32 hex): ",
		assign: func(c *domain.CoreInputs, v string) { c.AccountID = v },
		check:  domain.IsHexID,
		reason: "must be 32 hex chars",
	},
	{
		name:   "zoneId",
		prompt: "Zone ID (32 hex): ",
		assign: func(c *domain.CoreInputs, v string) { c.ZoneID = v },
		check:  domain.IsHexID,
		reason: "must be 32 hex chars",
	},
	{
		name:   "environment",
		prompt: "Environment [development/staging/production]: ",
		assign: func(c *domain.CoreInputs, v string) { c.Environment = domain.Environment(v) },
		check: func(v string) bool {
			for _, e := range domain.ValidEnvironments {
				if domain.Environment(v) == e {
					return true
				}
			}
			return false
		},
		reason: "unknown environment",
	},
}

// Collect prompts for the 7 core inputs, re-prompting each field up
// to maxAttempts on a failed check, then validates the unit.
func (s *IntakeService) Collect() (domain.CoreInputs, error) {
	var in domain.CoreInputs

	for _, f := range coreFields {
		accepted := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			answer, err := s.session.Question(f.prompt)
			if err != nil {
				return domain.CoreInputs{}, fmt.Errorf("collecting %s: %w", f.name, err)
			}
			if !f.check(answer) {
				continue
			}
			f.assign(&in, answer)
			accepted = true
			break
		}
		if !accepted {
			return domain.CoreInputs{}, fmt.Errorf("collecting %s: %s", f.name, f.reason)
		}
	}

	if err := in.Validate(); err != nil {
		return domain.CoreInputs{}, err
	}
	return in, nil
}

// Confirm walks the 15 derived values in declaration order, offering
// each for override. Empty answers keep the default. Invalid
// replacements are rejected: the previous value stays and the reason
// is reported, exactly once per field. Accepted overrides land in the
// modification log for transparency reporting.
func (s *IntakeService) Confirm(values map[string]domain.DerivedValue) ([]domain.Modification, []string, error) {
	var mods []domain.Modification
	var rejections []string

	for _, id := range domain.DerivedIDs {
		v := values[id]
		answer, err := s.session.Question(fmt.Sprintf("%s [%s]: ", id, v.Current))
		if err != nil {
			return mods, rejections, fmt.Errorf("confirming %s: %w", id, err)
		}
		if answer == "" || answer == v.Current {
			continue
		}

		mod, err := domain.ApplyOverride(values, id, answer)
		if err != nil {
			rejections = append(rejections, err.Error())
			continue
		}
		mods = append(mods, mod)
	}

	return mods, rejections, nil
}

// Close releases the collection collaborator.
func (s *IntakeService) Close() error {
	return s.session.Close()
}
