package evaluation

// Result is one row of the summary table.
type Result struct {
	Name   string
	Scores [numCriteria]Score
	Total  int
}

// Score returns the contribution shown in the criterion's column.
func (r Result) Score(c Criterion) int {
	if !c.Valid() {
		return 0
	}
	return r.Scores[c].Value()
}

// Aggregate derives a result row for each idea, preserving order. It does
// not modify ideas and returns the same rows for the same input.
func Aggregate(ideas []Idea) []Result {
	results := make([]Result, 0, len(ideas))
	for _, idea := range ideas {
		results = append(results, Result{
			Name:   idea.Name,
			Scores: idea.Scores,
			Total:  idea.Total(),
		})
	}
	return results
}
