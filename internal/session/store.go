// Package session holds the client's only mutable state: the current
// assessment, its id, the raw input text and the regulation text map. One
// store is created at startup and passed by reference to the TUI, the
// evidence lookup and the report exporter, replacing ad hoc globals.
//
// All mutation happens on the Bubble Tea update goroutine, so the store needs
// no locking; async commands receive value snapshots, never the store itself.
package session

import (
	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/report"
)

// Store is the session-scoped state for one page of assessments.
type Store struct {
	seq       int
	result    *assessment.Result
	resultID  string
	inputText string
	regTexts  map[string]string
}

func New() *Store {
	return &Store{regTexts: map[string]string{}}
}

// Begin starts a new submission and returns its token. Tokens increase
// monotonically; only the latest issued token may install results. Beginning
// a submission logically clears the assessment id so a stale id can never be
// paired with new input.
func (s *Store) Begin() int {
	s.seq++
	s.resultID = ""
	return s.seq
}

// Current returns the current token, used to stamp renders and late loads.
func (s *Store) Current() int {
	return s.seq
}

// Apply installs a completed assessment iff token is still the latest issued
// one. Result and id move together; a reader can never observe a new score
// with an old breakdown. Returns whether the result was applied.
func (s *Store) Apply(token int, r assessment.Result) bool {
	if token != s.seq {
		return false
	}
	s.result = &r
	s.resultID = r.AssessmentID
	return true
}

// ApplyRegTexts installs a regulation text load under the same staleness rule
// as Apply: loads racing a newer submission are discarded.
func (s *Store) ApplyRegTexts(token int, texts map[string]string) bool {
	if token != s.seq {
		return false
	}
	if texts == nil {
		texts = map[string]string{}
	}
	s.regTexts = texts
	return true
}

// Result returns the current assessment, or nil before the first successful
// submission.
func (s *Store) Result() *assessment.Result {
	return s.result
}

// AssessmentID returns the service-assigned id of the current assessment, or
// "" when the service did not persist the run or a submission is in flight.
func (s *Store) AssessmentID() string {
	return s.resultID
}

// SetInputText records the raw text currently in the input surface. The
// exporter uses it as the second-choice report payload.
func (s *Store) SetInputText(text string) {
	s.inputText = text
}

func (s *Store) InputText() string {
	return s.inputText
}

// RegulationText resolves an article id against the current text map. A
// missing article and a failed load look the same to callers.
func (s *Store) RegulationText(articleID string) (string, bool) {
	text, ok := s.regTexts[articleID]
	return text, ok
}

// ReportPayload selects the report request payload by priority: assessment
// id, else non-empty input text, else the cached result. Exactly one source
// is chosen; ok is false when no assessment has completed and no text exists.
func (s *Store) ReportPayload() (report.Payload, bool) {
	if s.resultID != "" {
		return report.Payload{AssessmentID: s.resultID}, true
	}
	if s.inputText != "" {
		return report.Payload{Documents: s.inputText}, true
	}
	if s.result != nil {
		return report.Payload{Result: s.result}, true
	}
	return report.Payload{}, false
}
