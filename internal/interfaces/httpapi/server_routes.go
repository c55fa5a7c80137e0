package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionID}", handler.GetCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/seasons/{seasonID}/table", handler.GetLeagueTable)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/seasons/{seasonID}/teams/{teamID}/standings", handler.GetTeamStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/seasons/{seasonID}/teams/{teamID}/form", handler.GetTeamForm)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/fixtures/{matchID}/preview", handler.GetFixturePreview)
	mux.HandleFunc("POST /v1/standings/compute", handler.ComputeStandings)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/cache/competitions/{competitionID}/invalidate",
		RequireInternalToken(internalToken, http.HandlerFunc(handler.InvalidateCompetitionCache)))
}
