package standings

import (
	"strings"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

// DefaultFormLength is the number of results in a form string when none is given.
const DefaultFormLength = 5

// FormString renders the team's last n results before the cutoff as W/D/L,
// most recent first.
func FormString(matches []match.Match, scope Scope, n int) string {
	if scope.incomplete() {
		return ""
	}
	if n <= 0 {
		n = DefaultFormLength
	}

	results := recentResults(matches, scope)
	if len(results) > n {
		results = results[:n]
	}

	var b strings.Builder
	b.Grow(len(results))
	for _, result := range results {
		switch {
		case result.own > result.opponent:
			b.WriteByte('W')
		case result.own == result.opponent:
			b.WriteByte('D')
		default:
			b.WriteByte('L')
		}
	}

	return b.String()
}
