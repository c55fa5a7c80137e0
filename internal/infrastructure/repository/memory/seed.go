package memory

import (
	"time"

	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

const (
	CompetitionIDLiga1Indonesia = "idn-liga-1"
	CompetitionIDPremierLeague  = "eng-premier-league"

	SeasonID2025 = "2025-2026"
)

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:            CompetitionIDLiga1Indonesia,
			Name:          "Liga 1 Indonesia",
			CountryCode:   "ID",
			CountryName:   "Indonesia",
			CurrentSeason: SeasonID2025,
			IsDefault:     true,
		},
		{
			ID:            CompetitionIDPremierLeague,
			Name:          "Premier League",
			CountryCode:   "GB",
			CountryName:   "England",
			CurrentSeason: SeasonID2025,
		},
	}
}

type seedTeam struct {
	id   string
	name string
}

var (
	persija   = seedTeam{id: "idn-persija", name: "Persija Jakarta"}
	persib    = seedTeam{id: "idn-persib", name: "Persib Bandung"}
	persebaya = seedTeam{id: "idn-persebaya", name: "Persebaya Surabaya"}
	baliUtd   = seedTeam{id: "idn-baliutd", name: "Bali United"}
	arsenal   = seedTeam{id: "eng-ars", name: "Arsenal"}
	liverpool = seedTeam{id: "eng-liv", name: "Liverpool"}
	chelsea   = seedTeam{id: "eng-che", name: "Chelsea"}
)

// SeedMatches returns a short played history for both seeded competitions
// plus one scheduled fixture each for previews.
func SeedMatches() []match.Match {
	liga1Start := time.Date(2025, time.August, 9, 12, 0, 0, 0, time.UTC)
	plStart := time.Date(2025, time.August, 16, 14, 0, 0, 0, time.UTC)

	return []match.Match{
		seedMatch("idn-gw1-01", CompetitionIDLiga1Indonesia, 1, persija, persib, liga1Start, 2, 1),
		seedMatch("idn-gw1-02", CompetitionIDLiga1Indonesia, 1, persebaya, baliUtd, liga1Start.Add(3*time.Hour), 0, 0),
		seedMatch("idn-gw2-01", CompetitionIDLiga1Indonesia, 2, persib, persebaya, liga1Start.AddDate(0, 0, 7), 3, 1),
		seedMatch("idn-gw2-02", CompetitionIDLiga1Indonesia, 2, baliUtd, persija, liga1Start.AddDate(0, 0, 7).Add(3*time.Hour), 1, 1),
		seedMatch("idn-gw3-01", CompetitionIDLiga1Indonesia, 3, persija, persebaya, liga1Start.AddDate(0, 0, 14), 2, 0),
		seedMatch("idn-gw3-02", CompetitionIDLiga1Indonesia, 3, baliUtd, persib, liga1Start.AddDate(0, 0, 14).Add(3*time.Hour), 0, 2),
		seedFixture("idn-gw4-01", CompetitionIDLiga1Indonesia, 4, persib, persija, liga1Start.AddDate(0, 0, 21)),
		seedMatch("eng-gw1-01", CompetitionIDPremierLeague, 1, arsenal, chelsea, plStart, 2, 1),
		seedMatch("eng-gw2-01", CompetitionIDPremierLeague, 2, chelsea, liverpool, plStart.AddDate(0, 0, 7), 1, 1),
		seedMatch("eng-gw3-01", CompetitionIDPremierLeague, 3, liverpool, arsenal, plStart.AddDate(0, 0, 14), 0, 3),
		seedFixture("eng-gw4-01", CompetitionIDPremierLeague, 4, arsenal, liverpool, plStart.AddDate(0, 0, 21)),
	}
}

func seedMatch(id, competitionID string, gameweek int, home, away seedTeam, kickoffAt time.Time, homeScore, awayScore int) match.Match {
	item := seedFixture(id, competitionID, gameweek, home, away, kickoffAt)
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.Status = match.StatusFinished
	return item
}

func seedFixture(id, competitionID string, gameweek int, home, away seedTeam, kickoffAt time.Time) match.Match {
	return match.Match{
		ID:            id,
		CompetitionID: competitionID,
		SeasonID:      SeasonID2025,
		Gameweek:      gameweek,
		HomeTeamID:    home.id,
		AwayTeamID:    away.id,
		HomeTeam:      home.name,
		AwayTeam:      away.name,
		KickoffAt:     kickoffAt,
		Status:        match.StatusScheduled,
	}
}
