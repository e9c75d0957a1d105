package domain

import "fmt"

// CoverageSummary is the cover/uncover percentage pair of one coverage report.
type CoverageSummary struct {
	Cover   int
	Uncover int
	literal string
}

// NewCoverageSummary builds a summary from a cover percentage; uncover is the complement.
func NewCoverageSummary(cover int) CoverageSummary {
	cover = min(max(cover, 0), 100)
	uncover := 100 - cover
	return CoverageSummary{
		Cover:   cover,
		Uncover: uncover,
		literal: fmt.Sprintf("['Cover %d%%', 'Uncover %d%%']", cover, uncover),
	}
}

// NewCoverageSummaryLiteral keeps a chart literal exactly as the report spelled it.
func NewCoverageSummaryLiteral(cover, uncover int, literal string) CoverageSummary {
	return CoverageSummary{Cover: cover, Uncover: uncover, literal: literal}
}

// String returns the text printed inside the coverage banner.
func (s CoverageSummary) String() string {
	return s.literal
}
