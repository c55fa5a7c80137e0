package standings

import (
	"math/rand"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

const (
	testCompetitionID = "eng-premier-league"
	testSeasonID      = "2023-2024"
	testTeamID        = "team-t"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 15, 0, 0, 0, time.UTC)
}

func score(v int) *int {
	return &v
}

func playedMatch(id, home, away string, homeScore, awayScore int, kickoff time.Time) match.Match {
	return match.Match{
		ID:            id,
		CompetitionID: testCompetitionID,
		SeasonID:      testSeasonID,
		HomeTeamID:    home,
		AwayTeamID:    away,
		KickoffAt:     kickoff,
		HomeScore:     score(homeScore),
		AwayScore:     score(awayScore),
		Status:        match.StatusFinished,
	}
}

func teamScope(cutoff time.Time) Scope {
	return Scope{
		TeamID:        testTeamID,
		SeasonID:      testSeasonID,
		CompetitionID: testCompetitionID,
		Cutoff:        cutoff,
	}
}

func TestCompute_RespectsCutoff(t *testing.T) {
	matches := []match.Match{
		playedMatch("m1", testTeamID, "team-a", 2, 0, day(2024, time.January, 1)),
		playedMatch("m2", "team-b", testTeamID, 1, 0, day(2024, time.February, 1)),
		playedMatch("m3", testTeamID, "team-c", 1, 1, day(2024, time.March, 1)),
	}

	got := Compute(matches, teamScope(day(2024, time.February, 15)))

	wantOverall := Summary{Played: 2, Won: 1, Drawn: 0, Lost: 1, GoalsFor: 2, GoalsAgainst: 1, Points: 3}
	if got.Overall != wantOverall {
		t.Fatalf("unexpected overall summary: got=%+v want=%+v", got.Overall, wantOverall)
	}
	wantHome := Summary{Played: 1, Won: 1, GoalsFor: 2, Points: 3}
	if got.Home != wantHome {
		t.Fatalf("unexpected home summary: got=%+v want=%+v", got.Home, wantHome)
	}
	wantAway := Summary{Played: 1, Lost: 1, GoalsAgainst: 1}
	if got.Away != wantAway {
		t.Fatalf("unexpected away summary: got=%+v want=%+v", got.Away, wantAway)
	}
}

func TestCompute_SkipsRowsOutsideScope(t *testing.T) {
	cutoff := day(2024, time.June, 1)

	otherCompetition := playedMatch("x1", testTeamID, "team-a", 3, 0, day(2024, time.January, 5))
	otherCompetition.CompetitionID = "esp-la-liga"
	otherSeason := playedMatch("x2", testTeamID, "team-a", 3, 0, day(2024, time.January, 6))
	otherSeason.SeasonID = "2022-2023"
	upcoming := playedMatch("x3", testTeamID, "team-a", 0, 0, day(2024, time.January, 7))
	upcoming.HomeScore, upcoming.AwayScore = nil, nil
	partial := playedMatch("x4", testTeamID, "team-a", 4, 0, day(2024, time.January, 8))
	partial.AwayScore = nil
	negative := playedMatch("x5", testTeamID, "team-a", -1, 0, day(2024, time.January, 9))
	atCutoff := playedMatch("x6", testTeamID, "team-a", 5, 0, cutoff)
	notInvolved := playedMatch("x7", "team-a", "team-b", 1, 0, day(2024, time.January, 10))
	counted := playedMatch("ok", "team-a", testTeamID, 0, 2, day(2024, time.January, 11))

	got := Compute([]match.Match{
		otherCompetition, otherSeason, upcoming, partial, negative, atCutoff, notInvolved, counted,
	}, teamScope(cutoff))

	want := Summary{Played: 1, Won: 1, GoalsFor: 2, Points: 3}
	if got.Overall != want {
		t.Fatalf("unexpected overall summary: got=%+v want=%+v", got.Overall, want)
	}
	if got.Away != want {
		t.Fatalf("expected the only counted match on the away side, got=%+v", got.Away)
	}
	if got.Home != (Summary{}) {
		t.Fatalf("expected empty home summary, got=%+v", got.Home)
	}
}

func TestCompute_ZeroCutoffCountsEverything(t *testing.T) {
	matches := []match.Match{
		playedMatch("m1", testTeamID, "team-a", 1, 0, day(2024, time.January, 1)),
		playedMatch("m2", testTeamID, "team-b", 1, 0, day(2030, time.January, 1)),
	}

	got := Compute(matches, teamScope(time.Time{}))
	if got.Overall.Played != 2 {
		t.Fatalf("expected both matches counted without cutoff, got=%+v", got.Overall)
	}
}

func TestCompute_EmptyScopeGuard(t *testing.T) {
	matches := []match.Match{
		playedMatch("m1", "", "team-a", 1, 0, day(2024, time.January, 1)),
	}

	tests := []struct {
		name  string
		scope Scope
	}{
		{name: "empty team", scope: Scope{SeasonID: testSeasonID, CompetitionID: testCompetitionID, Cutoff: day(2025, 1, 1)}},
		{name: "empty season", scope: Scope{TeamID: testTeamID, CompetitionID: testCompetitionID, Cutoff: day(2025, 1, 1)}},
		{name: "empty competition", scope: Scope{TeamID: testTeamID, SeasonID: testSeasonID, Cutoff: day(2025, 1, 1)}},
		{name: "blank team", scope: Scope{TeamID: "  ", SeasonID: testSeasonID, CompetitionID: testCompetitionID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(matches, tt.scope); got != (Split{}) {
				t.Fatalf("expected zero split, got=%+v", got)
			}
			if got := ComputeRecentForm(matches, tt.scope, 3, VenueHome); got != (RecentForm{}) {
				t.Fatalf("expected zero recent form, got=%+v", got)
			}
		})
	}

	if got := Compute(nil, Scope{SeasonID: testSeasonID, CompetitionID: testCompetitionID}); got != (Split{}) {
		t.Fatalf("expected zero split for nil matches, got=%+v", got)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	matches := randomMatches(rand.New(rand.NewSource(7)), 200)
	scope := teamScope(day(2024, time.May, 1))

	first := Compute(matches, scope)
	second := Compute(matches, scope)
	if first != second {
		t.Fatalf("expected identical results, first=%+v second=%+v", first, second)
	}
}

func TestCompute_ConservationAndDecomposition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		matches := randomMatches(rng, 120)
		got := Compute(matches, teamScope(day(2024, time.April, 1+round)))

		for name, s := range map[string]Summary{"overall": got.Overall, "home": got.Home, "away": got.Away} {
			if s.Played != s.Won+s.Drawn+s.Lost {
				t.Fatalf("round %d %s: played %d != won+drawn+lost %+v", round, name, s.Played, s)
			}
			if s.Points != 3*s.Won+s.Drawn {
				t.Fatalf("round %d %s: points %d != 3*won+drawn %+v", round, name, s.Points, s)
			}
		}
		if got.Overall != Sum(got.Home, got.Away) {
			t.Fatalf("round %d: overall %+v is not home+away %+v/%+v", round, got.Overall, got.Home, got.Away)
		}
	}
}

func TestComputeRecentForm_UsesMostRecentMatches(t *testing.T) {
	matches := []match.Match{
		playedMatch("m1", testTeamID, "team-a", 1, 0, day(2024, time.January, 1)),
		playedMatch("m2", "team-b", testTeamID, 2, 2, day(2024, time.January, 2)),
		playedMatch("m3", testTeamID, "team-c", 0, 1, day(2024, time.January, 3)),
		playedMatch("m4", "team-d", testTeamID, 0, 3, day(2024, time.January, 4)),
		playedMatch("m5", testTeamID, "team-e", 2, 0, day(2024, time.January, 5)),
	}
	cutoff := day(2024, time.January, 10)

	home := ComputeRecentForm(matches, teamScope(cutoff), 3, VenueHome)
	wantOverall := Summary{Played: 3, Won: 2, Lost: 1, GoalsFor: 5, GoalsAgainst: 1, Points: 6}
	if home.Overall != wantOverall {
		t.Fatalf("unexpected overall form: got=%+v want=%+v", home.Overall, wantOverall)
	}
	wantHome := Summary{Played: 3, Won: 2, Lost: 1, GoalsFor: 3, GoalsAgainst: 1, Points: 6}
	if home.VenueSpecific != wantHome {
		t.Fatalf("unexpected home form: got=%+v want=%+v", home.VenueSpecific, wantHome)
	}

	away := ComputeRecentForm(matches, teamScope(cutoff), 3, VenueAway)
	wantAway := Summary{Played: 2, Won: 1, Drawn: 1, GoalsFor: 5, GoalsAgainst: 2, Points: 4}
	if away.VenueSpecific != wantAway {
		t.Fatalf("unexpected away form: got=%+v want=%+v", away.VenueSpecific, wantAway)
	}
	if away.Overall != wantOverall {
		t.Fatalf("overall form should not depend on venue filter: got=%+v", away.Overall)
	}
}

func TestComputeRecentForm_FewerMatchesThanLimit(t *testing.T) {
	matches := []match.Match{
		playedMatch("m1", testTeamID, "team-a", 1, 0, day(2024, time.January, 1)),
		playedMatch("m2", "team-b", testTeamID, 2, 2, day(2024, time.January, 2)),
		playedMatch("m3", testTeamID, "team-c", 0, 1, day(2024, time.January, 3)),
	}

	got := ComputeRecentForm(matches, teamScope(day(2024, time.January, 3)), 3, VenueHome)
	want := Summary{Played: 2, Won: 1, Drawn: 1, GoalsFor: 3, GoalsAgainst: 2, Points: 4}
	if got.Overall != want {
		t.Fatalf("unexpected overall form: got=%+v want=%+v", got.Overall, want)
	}

	none := ComputeRecentForm(matches, teamScope(day(2023, time.December, 1)), 3, VenueAway)
	if none != (RecentForm{}) {
		t.Fatalf("expected zero form without qualifying matches, got=%+v", none)
	}
}

func TestComputeRecentForm_DefaultLimit(t *testing.T) {
	matches := make([]match.Match, 0, 6)
	for i := 1; i <= 6; i++ {
		matches = append(matches, playedMatch("m"+string(rune('0'+i)), testTeamID, "team-a", 1, 0, day(2024, time.January, i)))
	}

	got := ComputeRecentForm(matches, teamScope(time.Time{}), 0, VenueHome)
	if got.Overall.Played != DefaultFormLimit || got.VenueSpecific.Played != DefaultFormLimit {
		t.Fatalf("expected default limit %d, got=%+v", DefaultFormLimit, got)
	}
}

func TestComputeRecentForm_TieBreakByMatchID(t *testing.T) {
	kickoff := day(2024, time.March, 3)
	matches := []match.Match{
		playedMatch("m-b", testTeamID, "team-a", 0, 1, kickoff),
		playedMatch("m-a", testTeamID, "team-c", 1, 0, kickoff),
	}

	got := ComputeRecentForm(matches, teamScope(time.Time{}), 1, VenueHome)
	if got.Overall.Lost != 1 || got.Overall.Played != 1 {
		t.Fatalf("expected match m-b to win the tie-break, got=%+v", got.Overall)
	}

	reversed := ComputeRecentForm([]match.Match{matches[1], matches[0]}, teamScope(time.Time{}), 1, VenueHome)
	if reversed != got {
		t.Fatalf("tie-break should not depend on input order: got=%+v reversed=%+v", got, reversed)
	}
}

func randomMatches(rng *rand.Rand, n int) []match.Match {
	teams := []string{testTeamID, "team-a", "team-b", "team-c"}
	out := make([]match.Match, 0, n)
	for i := 0; i < n; i++ {
		home := teams[rng.Intn(len(teams))]
		away := teams[rng.Intn(len(teams))]
		m := playedMatch("r"+string(rune('a'+i%26)), home, away, rng.Intn(5), rng.Intn(5), day(2024, time.January, 1).Add(time.Duration(rng.Intn(24*150))*time.Hour))
		switch rng.Intn(10) {
		case 0:
			m.HomeScore, m.AwayScore = nil, nil
		case 1:
			m.AwayScore = nil
		case 2:
			m.SeasonID = "2022-2023"
		}
		out = append(out, m)
	}
	return out
}
