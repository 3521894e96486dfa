package validation

import "fmt"

// Level indicates which stage produced the result.
type Level string

const (
	// LevelSchema covers the structure of house.yaml.
	LevelSchema Level = "schema"
	// LevelCapacity covers opening calculator outcomes.
	LevelCapacity Level = "capacity"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Wall        string   `json:"wall,omitempty"`
	Message     string   `json:"message"`
	SpecPath    string   `json:"spec_path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report collects findings for a whole project.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// ForWall returns every finding attached to the named wall, errors first.
func (r *Report) ForWall(name string) []Result {
	var out []Result
	for _, group := range [][]Result{r.Errors, r.Warnings, r.Info} {
		for _, res := range group {
			if res.Wall == name {
				out = append(out, res)
			}
		}
	}
	return out
}

// WallValid reports whether the named wall has no errors.
func (r *Report) WallValid(name string) bool {
	for _, e := range r.Errors {
		if e.Wall == name {
			return false
		}
	}
	return true
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}

// WallPath returns the house.yaml path of a field on the i-th wall.
func WallPath(i int, field string) string {
	if field == "" {
		return fmt.Sprintf("walls[%d]", i)
	}
	return fmt.Sprintf("walls[%d].%s", i, field)
}
