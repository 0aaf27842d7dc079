package evaluation

// Step identifies the wizard view currently shown.
type Step int

const (
	StepCollect Step = iota + 1 // Enter ideas
	StepScore                   // Rate each idea
	StepResults                 // Summary table
)

// StepCount is the number of wizard steps.
const StepCount = 3

// String returns the step's title.
func (s Step) String() string {
	switch s {
	case StepCollect:
		return "Enter Your Ideas"
	case StepScore:
		return "Rate Each Idea"
	case StepResults:
		return "Evaluation Results"
	default:
		return "Unknown"
	}
}

// Idea is a candidate being evaluated.
type Idea struct {
	Name   string
	Scores [numCriteria]Score
}

// Score returns the rating for c, or Unset.
func (i Idea) Score(c Criterion) Score {
	if !c.Valid() {
		return Unset
	}
	return i.Scores[c]
}

// Total sums the idea's ratings across all criteria.
func (i Idea) Total() int {
	total := 0
	for _, c := range Criteria {
		total += i.Scores[c].Value()
	}
	return total
}

// State is an immutable snapshot of the wizard. Mutators return a new State
// and never touch the receiver's ideas slice.
type State struct {
	Step  Step
	Ideas []Idea
}

// NewState returns the initial snapshot: step 1 with a single blank idea.
func NewState() State {
	return State{
		Step:  StepCollect,
		Ideas: []Idea{{}},
	}
}

// NewStateWithNames seeds the idea list with the given names. An empty list
// still yields one blank idea.
func NewStateWithNames(names ...string) State {
	if len(names) == 0 {
		return NewState()
	}
	ideas := make([]Idea, len(names))
	for i, name := range names {
		ideas[i].Name = name
	}
	return State{Step: StepCollect, Ideas: ideas}
}

// CanAdvance reports whether a Next action exists on the current step.
func (s State) CanAdvance() bool {
	return s.Step < StepResults
}

// CanRetreat reports whether a Back action exists on the current step.
func (s State) CanRetreat() bool {
	return s.Step > StepCollect
}

// Advance moves forward one step. It is a no-op on the last step.
func (s State) Advance() State {
	if !s.CanAdvance() {
		return s
	}
	s.Step++
	return s
}

// Retreat moves back one step. It is a no-op on the first step.
func (s State) Retreat() State {
	if !s.CanRetreat() {
		return s
	}
	s.Step--
	return s
}

// AddIdea appends a blank idea.
func (s State) AddIdea() State {
	ideas := make([]Idea, len(s.Ideas), len(s.Ideas)+1)
	copy(ideas, s.Ideas)
	s.Ideas = append(ideas, Idea{})
	return s
}

// SetIdeaName renames the idea at index. Out-of-range indices are ignored.
func (s State) SetIdeaName(index int, name string) State {
	if !s.HasIdea(index) {
		return s
	}
	s.Ideas = s.cloneIdeas()
	s.Ideas[index].Name = name
	return s
}

// SetScore parses raw and stores it for the idea at index. Unparseable or
// out-of-range input is stored as Unset so it contributes nothing.
func (s State) SetScore(index int, c Criterion, raw string) State {
	return s.SetScoreValue(index, c, ParseScore(raw))
}

// SetScoreValue stores score for the idea at index, overwriting any previous
// rating. Invalid indices or criteria leave the state unchanged.
func (s State) SetScoreValue(index int, c Criterion, score Score) State {
	if !s.HasIdea(index) || !c.Valid() {
		return s
	}
	s.Ideas = s.cloneIdeas()
	s.Ideas[index].Scores[c] = score.normalize()
	return s
}

// HasIdea reports whether index addresses an existing idea.
func (s State) HasIdea(index int) bool {
	return index >= 0 && index < len(s.Ideas)
}

// Results aggregates the current ideas.
func (s State) Results() []Result {
	return Aggregate(s.Ideas)
}

func (s State) cloneIdeas() []Idea {
	ideas := make([]Idea, len(s.Ideas))
	copy(ideas, s.Ideas)
	return ideas
}
