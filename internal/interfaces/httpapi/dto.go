package httpapi

import (
	"time"

	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	"github.com/riskibarqy/matchday-standings/internal/domain/standings"
	"github.com/riskibarqy/matchday-standings/internal/usecase"
)

type competitionDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CountryCode   string `json:"country_code"`
	CountryName   string `json:"country_name,omitempty"`
	CurrentSeason string `json:"current_season"`
	IsDefault     bool   `json:"is_default"`
}

type summaryDTO struct {
	Played         int `json:"played"`
	Won            int `json:"won"`
	Drawn          int `json:"drawn"`
	Lost           int `json:"lost"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	Points         int `json:"points"`
}

type splitDTO struct {
	Overall summaryDTO `json:"overall"`
	Home    summaryDTO `json:"home"`
	Away    summaryDTO `json:"away"`
}

type recentDTO struct {
	Overall       summaryDTO `json:"overall"`
	VenueSpecific summaryDTO `json:"venue_specific"`
}

type teamStandingsDTO struct {
	CompetitionID  string   `json:"competition_id"`
	SeasonID       string   `json:"season_id"`
	TeamID         string   `json:"team_id"`
	Before         string   `json:"before,omitempty"`
	Record         splitDTO `json:"record"`
	Form           string   `json:"form"`
	LikelyFavorite bool     `json:"likely_favorite"`
}

type recentFormDTO struct {
	CompetitionID string    `json:"competition_id"`
	SeasonID      string    `json:"season_id"`
	TeamID        string    `json:"team_id"`
	Before        string    `json:"before,omitempty"`
	Limit         int       `json:"limit"`
	Venue         string    `json:"venue"`
	Recent        recentDTO `json:"recent"`
}

type tableRowDTO struct {
	Position       int      `json:"position"`
	TeamID         string   `json:"team_id"`
	Record         splitDTO `json:"record"`
	Form           string   `json:"form"`
	LikelyFavorite bool     `json:"likely_favorite"`
}

type leagueTableDTO struct {
	CompetitionID string        `json:"competition_id"`
	SeasonID      string        `json:"season_id"`
	Before        string        `json:"before,omitempty"`
	Rows          []tableRowDTO `json:"rows"`
}

type matchDTO struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competition_id"`
	SeasonID      string `json:"season_id"`
	Gameweek      int    `json:"gameweek"`
	HomeTeamID    string `json:"home_team_id"`
	AwayTeamID    string `json:"away_team_id"`
	HomeTeam      string `json:"home_team,omitempty"`
	AwayTeam      string `json:"away_team,omitempty"`
	KickoffAt     string `json:"kickoff_at"`
	HomeScore     *int   `json:"home_score"`
	AwayScore     *int   `json:"away_score"`
	Status        string `json:"status"`
}

type previewSideDTO struct {
	TeamID         string    `json:"team_id"`
	TeamName       string    `json:"team_name,omitempty"`
	Record         splitDTO  `json:"record"`
	Recent         recentDTO `json:"recent"`
	Form           string    `json:"form"`
	LikelyFavorite bool      `json:"likely_favorite"`
}

type fixturePreviewDTO struct {
	Match matchDTO       `json:"match"`
	Home  previewSideDTO `json:"home"`
	Away  previewSideDTO `json:"away"`
}

type computeStandingsDTO struct {
	Record         splitDTO  `json:"record"`
	Recent         recentDTO `json:"recent"`
	Form           string    `json:"form"`
	LikelyFavorite bool      `json:"likely_favorite"`
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{
		ID:            v.ID,
		Name:          v.Name,
		CountryCode:   v.CountryCode,
		CountryName:   v.CountryName,
		CurrentSeason: v.CurrentSeason,
		IsDefault:     v.IsDefault,
	}
}

func summaryToDTO(v standings.Summary) summaryDTO {
	return summaryDTO{
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: standings.GoalDifference(v),
		Points:         v.Points,
	}
}

func splitToDTO(v standings.Split) splitDTO {
	return splitDTO{
		Overall: summaryToDTO(v.Overall),
		Home:    summaryToDTO(v.Home),
		Away:    summaryToDTO(v.Away),
	}
}

func recentToDTO(v standings.RecentForm) recentDTO {
	return recentDTO{
		Overall:       summaryToDTO(v.Overall),
		VenueSpecific: summaryToDTO(v.VenueSpecific),
	}
}

func teamStandingsToDTO(v usecase.TeamStandings) teamStandingsDTO {
	return teamStandingsDTO{
		CompetitionID:  v.CompetitionID,
		SeasonID:       v.SeasonID,
		TeamID:         v.TeamID,
		Before:         formatCutoff(v.Before),
		Record:         splitToDTO(v.Record),
		Form:           v.Form,
		LikelyFavorite: v.LikelyFavorite,
	}
}

func recentFormToDTO(v usecase.RecentForm) recentFormDTO {
	return recentFormDTO{
		CompetitionID: v.CompetitionID,
		SeasonID:      v.SeasonID,
		TeamID:        v.TeamID,
		Before:        formatCutoff(v.Before),
		Limit:         v.Limit,
		Venue:         string(v.Venue),
		Recent:        recentToDTO(v.Form),
	}
}

func leagueTableToDTO(v usecase.LeagueTable) leagueTableDTO {
	rows := make([]tableRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, tableRowDTO{
			Position:       row.Position,
			TeamID:         row.TeamID,
			Record:         splitToDTO(row.Record),
			Form:           row.Form,
			LikelyFavorite: row.LikelyFavorite,
		})
	}

	return leagueTableDTO{
		CompetitionID: v.CompetitionID,
		SeasonID:      v.SeasonID,
		Before:        formatCutoff(v.Before),
		Rows:          rows,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:            v.ID,
		CompetitionID: v.CompetitionID,
		SeasonID:      v.SeasonID,
		Gameweek:      v.Gameweek,
		HomeTeamID:    v.HomeTeamID,
		AwayTeamID:    v.AwayTeamID,
		HomeTeam:      v.HomeTeam,
		AwayTeam:      v.AwayTeam,
		KickoffAt:     formatCutoff(v.KickoffAt),
		HomeScore:     v.HomeScore,
		AwayScore:     v.AwayScore,
		Status:        match.NormalizeStatus(v.Status),
	}
}

func previewSideToDTO(v usecase.PreviewSide) previewSideDTO {
	return previewSideDTO{
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		Record:         splitToDTO(v.Record),
		Recent:         recentToDTO(v.Recent),
		Form:           v.Form,
		LikelyFavorite: v.LikelyFavorite,
	}
}

func fixturePreviewToDTO(v usecase.FixturePreview) fixturePreviewDTO {
	return fixturePreviewDTO{
		Match: matchToDTO(v.Match),
		Home:  previewSideToDTO(v.Home),
		Away:  previewSideToDTO(v.Away),
	}
}

func computeResultToDTO(v usecase.ComputeResult) computeStandingsDTO {
	return computeStandingsDTO{
		Record:         splitToDTO(v.Record),
		Recent:         recentToDTO(v.Recent),
		Form:           v.Form,
		LikelyFavorite: v.LikelyFavorite,
	}
}

func formatCutoff(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
