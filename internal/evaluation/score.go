package evaluation

import (
	"strconv"
	"strings"
)

// Score is a rating on a single criterion. The zero value is Unset.
type Score int

const (
	Unset    Score = 0
	MinScore Score = 1
	MaxScore Score = 5
)

// Valid reports whether s is a real rating in [MinScore, MaxScore].
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Value returns the contribution of s to a total. Unset and out-of-range
// values contribute 0.
func (s Score) Value() int {
	if !s.Valid() {
		return 0
	}
	return int(s)
}

// normalize folds anything outside the rating range into Unset.
func (s Score) normalize() Score {
	if !s.Valid() {
		return Unset
	}
	return s
}

// ParseScore converts raw selector input into a Score. Non-numeric input and
// numbers outside 1..5 yield Unset rather than being clamped.
func ParseScore(raw string) Score {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Unset
	}
	return Score(n).normalize()
}

// ScoreChoices returns the selectable ratings in ascending order.
func ScoreChoices() []Score {
	choices := make([]Score, 0, MaxScore)
	for s := MinScore; s <= MaxScore; s++ {
		choices = append(choices, s)
	}
	return choices
}
