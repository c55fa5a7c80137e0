package standings

import (
	"sort"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

// DefaultFormLimit is the number of matches used by recent-form indicators.
const DefaultFormLimit = 3

// teamResult is one qualifying match seen from the scoped team's side.
type teamResult struct {
	matchID   string
	position  int
	venue     Venue
	own       int
	opponent  int
	kickoffAt int64
}

// Compute returns the team's record for every played match in scope,
// split by venue. An incomplete scope yields the zero Split without
// looking at matches.
func Compute(matches []match.Match, scope Scope) Split {
	if scope.incomplete() {
		return Split{}
	}

	var out Split
	for i := range matches {
		result, ok := resultFor(matches[i], i, scope)
		if !ok {
			continue
		}
		if result.venue == VenueHome {
			record(&out.Home, result.own, result.opponent)
		} else {
			record(&out.Away, result.own, result.opponent)
		}
	}
	out.Overall = Sum(out.Home, out.Away)

	return out
}

// ComputeRecentForm folds the team's most recent limit played matches
// before the cutoff. Overall ignores venue; VenueSpecific only considers
// matches played at venue (away unless venue is VenueHome). A limit <= 0
// falls back to DefaultFormLimit.
func ComputeRecentForm(matches []match.Match, scope Scope, limit int, venue Venue) RecentForm {
	if scope.incomplete() {
		return RecentForm{}
	}
	if limit <= 0 {
		limit = DefaultFormLimit
	}
	if venue != VenueHome {
		venue = VenueAway
	}

	results := recentResults(matches, scope)

	var out RecentForm
	for i := 0; i < len(results) && i < limit; i++ {
		record(&out.Overall, results[i].own, results[i].opponent)
	}

	taken := 0
	for _, result := range results {
		if taken == limit {
			break
		}
		if result.venue != venue {
			continue
		}
		record(&out.VenueSpecific, result.own, result.opponent)
		taken++
	}

	return out
}

// recentResults returns qualifying results newest first. Matches sharing a
// kickoff are ordered by match id descending, then by input position.
func recentResults(matches []match.Match, scope Scope) []teamResult {
	results := make([]teamResult, 0, len(matches))
	for i := range matches {
		if result, ok := resultFor(matches[i], i, scope); ok {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].kickoffAt != results[j].kickoffAt {
			return results[i].kickoffAt > results[j].kickoffAt
		}
		if results[i].matchID != results[j].matchID {
			return results[i].matchID > results[j].matchID
		}
		return results[i].position < results[j].position
	})

	return results
}

func resultFor(m match.Match, position int, scope Scope) (teamResult, bool) {
	if m.CompetitionID != scope.CompetitionID || m.SeasonID != scope.SeasonID {
		return teamResult{}, false
	}
	if !scope.Cutoff.IsZero() && !m.KickoffAt.Before(scope.Cutoff) {
		return teamResult{}, false
	}
	if !m.Involves(scope.TeamID) {
		return teamResult{}, false
	}
	if !m.IsPlayed() || *m.HomeScore < 0 || *m.AwayScore < 0 {
		return teamResult{}, false
	}

	result := teamResult{
		matchID:   m.ID,
		position:  position,
		kickoffAt: m.KickoffAt.UnixNano(),
	}
	switch scope.TeamID {
	case m.HomeTeamID:
		result.venue = VenueHome
		result.own, result.opponent = *m.HomeScore, *m.AwayScore
	case m.AwayTeamID:
		result.venue = VenueAway
		result.own, result.opponent = *m.AwayScore, *m.HomeScore
	default:
		return teamResult{}, false
	}

	return result, true
}
