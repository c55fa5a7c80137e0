package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/matchday-standings/internal/domain/standings"
)

func TestMatchRepository_ListByCompetitionSeason(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	items, err := repo.ListByCompetitionSeason(context.Background(), CompetitionIDPremierLeague, SeasonID2025)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 premier league matches, got %d", len(items))
	}

	items[0].HomeTeamID = "mutated"
	again, _ := repo.ListByCompetitionSeason(context.Background(), CompetitionIDPremierLeague, SeasonID2025)
	if again[0].HomeTeamID == "mutated" {
		t.Fatalf("expected repository to return a copy")
	}

	empty, err := repo.ListByCompetitionSeason(context.Background(), CompetitionIDPremierLeague, "1999-2000")
	if err != nil {
		t.Fatalf("list unknown season: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no matches for unknown season, got %d", len(empty))
	}
}

func TestMatchRepository_GetByIDScopedToCompetition(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches())
	item, ok, err := repo.GetByID(context.Background(), CompetitionIDLiga1Indonesia, "idn-gw4-01")
	if err != nil || !ok {
		t.Fatalf("expected fixture to exist, ok=%v err=%v", ok, err)
	}
	if !item.IsUpcoming() {
		t.Fatalf("expected seeded gameweek 4 fixture to be upcoming")
	}

	_, ok, _ = repo.GetByID(context.Background(), CompetitionIDPremierLeague, "idn-gw4-01")
	if ok {
		t.Fatalf("expected lookup under another competition to miss")
	}
}

func TestSeed_CompetitionsValidAndTablesPopulated(t *testing.T) {
	t.Parallel()

	for _, item := range SeedCompetitions() {
		if err := item.Validate(); err != nil {
			t.Fatalf("seed competition %s invalid: %v", item.ID, err)
		}
	}

	table := standings.BuildTable(SeedMatches(), standings.Scope{
		CompetitionID: CompetitionIDLiga1Indonesia,
		SeasonID:      SeasonID2025,
	}, standings.DefaultFormLength)
	if len(table) != 4 {
		t.Fatalf("expected 4 teams in seeded liga 1 table, got %d", len(table))
	}
	if table[0].TeamID != persija.id && table[0].TeamID != persib.id {
		t.Fatalf("unexpected seeded leader %s", table[0].TeamID)
	}
}
