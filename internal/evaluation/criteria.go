// Package evaluation holds the idea-scoring model: the fixed criteria, the
// wizard state and the score aggregator. Everything here is pure and
// synchronous; callers that share a State across goroutines must guard it.
package evaluation

import "strings"

// Criterion is one fixed axis of evaluation.
type Criterion int

const (
	Feasibility Criterion = iota
	Cost
	Impact
	Alignment
	Timeframe

	numCriteria = 5
)

// Criteria lists every criterion in display order.
var Criteria = [numCriteria]Criterion{Feasibility, Cost, Impact, Alignment, Timeframe}

var criterionNames = [numCriteria]string{
	"Feasibility",
	"Cost",
	"Impact",
	"Alignment",
	"Timeframe",
}

// String returns the display name of the criterion.
func (c Criterion) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return criterionNames[c]
}

// Valid reports whether c is one of the fixed criteria.
func (c Criterion) Valid() bool {
	return c >= 0 && c < numCriteria
}

// ParseCriterion resolves a criterion by name, ignoring case and
// surrounding whitespace.
func ParseCriterion(name string) (Criterion, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Criteria {
		if strings.EqualFold(criterionNames[c], name) {
			return c, true
		}
	}
	return 0, false
}

// CriterionNames returns the display names in order.
func CriterionNames() []string {
	names := make([]string, 0, numCriteria)
	for _, c := range Criteria {
		names = append(names, c.String())
	}
	return names
}
