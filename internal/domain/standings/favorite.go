package standings

// Product thresholds for the favorite label.
const (
	favoriteMinPlayed   = 8
	favoriteMinWinRate  = 0.45
	favoriteMaxLossRate = 0.33
)

// IsLikelyFavorite flags a team with at least 8 played matches, a win rate
// above 45% and a loss rate below 33%. It is a UI highlight, not a prediction.
func IsLikelyFavorite(s Summary) bool {
	if s.Played < favoriteMinPlayed {
		return false
	}

	played := float64(s.Played)
	return float64(s.Won)/played > favoriteMinWinRate &&
		float64(s.Lost)/played < favoriteMaxLossRate
}
