package testfixtures

import "github.com/mark3labs/ideaeval/internal/evaluation"

// Fixed idea names for consistent assertions
const (
	IdeaA = "Idea A"
	IdeaB = "Idea B"
)

// FullScoresA are the ratings for IdeaA, in criteria order. They total 15.
var FullScoresA = []string{"5", "3", "4", "2", "1"}

// ScoredState returns IdeaA fully scored (total 15) and IdeaB unscored.
func ScoredState() evaluation.State {
	s := evaluation.NewStateWithNames(IdeaA, IdeaB)
	for i, raw := range FullScoresA {
		s = s.SetScore(0, evaluation.Criteria[i], raw)
	}
	return s
}

// ResultsState returns ScoredState advanced to the results step.
func ResultsState() evaluation.State {
	return ScoredState().Advance().Advance()
}
