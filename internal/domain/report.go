package domain

// ValidationReport is the structured result of validating a project.
// Never a bare boolean: callers choose presentation and exit code.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Diagnosis is the richer result of a diagnose run. Deep scans only
// ever add recommendations, never new errors.
type Diagnosis struct {
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
