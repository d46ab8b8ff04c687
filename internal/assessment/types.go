package assessment

// Check statuses as reported by the scoring service. Other status strings are
// legal and treated as neutral: not counted, not linked to evidence.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Result is the canonical, normalized form of one assessment. At most one
// Result is current at a time; a new submission replaces it wholesale.
type Result struct {
	ReadinessScore  float64
	AssessmentID    string
	Breakdown       []Check
	Recommendations []Recommendation
}

// Check is one row of the score breakdown. Weight and Contribution keep the
// service's full precision; rounding happens only at render time.
type Check struct {
	Name         string
	Status       string
	Weight       float64
	Contribution float64
}

// Recommendation pairs a gap label with the resources matched to it.
type Recommendation struct {
	Gap       string
	Resources []Resource
}

// ContactKind classifies how a resource's contact surface should be presented.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactEmail
	ContactURL
	ContactPlain
)

// Resource is the canonical resource shape. The wire format is duck-typed
// (title vs name, link vs contact); Normalize resolves both unions exactly
// once at the boundary so render paths never repeat precedence logic.
type Resource struct {
	Title       string
	Type        string
	Contact     string
	ContactKind ContactKind
}

// FailedCount returns the number of breakdown entries with status FAIL.
func (r Result) FailedCount() int {
	return CountStatus(r.Breakdown, StatusFail)
}

// PassedCount returns the number of breakdown entries with status PASS.
func (r Result) PassedCount() int {
	return CountStatus(r.Breakdown, StatusPass)
}

// CountStatus counts breakdown entries whose status matches exactly.
func CountStatus(breakdown []Check, status string) int {
	count := 0
	for _, c := range breakdown {
		if c.Status == status {
			count++
		}
	}
	return count
}
