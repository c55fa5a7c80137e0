package standings

import (
	"sort"
	"strings"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

// TableRow is one team's line in a competition table.
type TableRow struct {
	Position       int
	TeamID         string
	Record         Split
	GoalDifference int
	Form           string
	LikelyFavorite bool
}

// TeamIDs lists every team appearing in a played match of the scoped
// competition season before the cutoff, sorted by id. Scope.TeamID is ignored.
func TeamIDs(matches []match.Match, scope Scope) []string {
	if strings.TrimSpace(scope.SeasonID) == "" || strings.TrimSpace(scope.CompetitionID) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, m := range matches {
		if m.CompetitionID != scope.CompetitionID || m.SeasonID != scope.SeasonID {
			continue
		}
		if !scope.Cutoff.IsZero() && !m.KickoffAt.Before(scope.Cutoff) {
			continue
		}
		if !m.IsPlayed() {
			continue
		}
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			if strings.TrimSpace(teamID) != "" {
				seen[teamID] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for teamID := range seen {
		out = append(out, teamID)
	}
	sort.Strings(out)

	return out
}

// BuildRow computes an unranked table row for one team.
func BuildRow(matches []match.Match, scope Scope, formLength int) TableRow {
	record := Compute(matches, scope)
	return TableRow{
		TeamID:         scope.TeamID,
		Record:         record,
		GoalDifference: GoalDifference(record.Overall),
		Form:           FormString(matches, scope, formLength),
		LikelyFavorite: IsLikelyFavorite(record.Overall),
	}
}

// BuildTable computes and ranks a row for every team in scope.
func BuildTable(matches []match.Match, scope Scope, formLength int) []TableRow {
	teamIDs := TeamIDs(matches, scope)
	rows := make([]TableRow, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		rows = append(rows, BuildRow(matches, scope.ForTeam(teamID), formLength))
	}

	return RankTable(rows)
}

// RankTable orders rows by points, goal difference, goals scored and team
// id, then assigns positions. Rows with identical points, goal difference
// and goals scored share a position.
func RankTable(rows []TableRow) []TableRow {
	out := append([]TableRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Record.Overall, out[j].Record.Overall
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return out[i].TeamID < out[j].TeamID
	})

	for i := range out {
		if i > 0 && sameRank(out[i], out[i-1]) {
			out[i].Position = out[i-1].Position
			continue
		}
		out[i].Position = i + 1
	}

	return out
}

func sameRank(a, b TableRow) bool {
	return a.Record.Overall.Points == b.Record.Overall.Points &&
		a.GoalDifference == b.GoalDifference &&
		a.Record.Overall.GoalsFor == b.Record.Overall.GoalsFor
}
