package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFeedRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEventTypes)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/livescores", handler.ListLiveScores)
	mux.HandleFunc("GET /v1/matches/{matchKey}", handler.GetMatch)
	mux.HandleFunc("GET /v1/players/{playerKey}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/rankings/{rankingType}", handler.ListRankings)
}

func registerFavoriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/favorites/matches", handler.ListFavoriteMatches)
	mux.HandleFunc("GET /v1/favorites/matches/{matchKey}", handler.GetFavoriteMatch)
	mux.HandleFunc("PUT /v1/favorites/matches/{matchKey}", handler.AddFavoriteMatch)
	mux.HandleFunc("DELETE /v1/favorites/matches/{matchKey}", handler.RemoveFavoriteMatch)

	mux.HandleFunc("GET /v1/favorites/players", handler.ListFavoritePlayers)
	mux.HandleFunc("GET /v1/favorites/players/{playerKey}", handler.GetFavoritePlayer)
	mux.HandleFunc("PUT /v1/favorites/players/{playerKey}", handler.AddFavoritePlayer)
	mux.HandleFunc("DELETE /v1/favorites/players/{playerKey}", handler.RemoveFavoritePlayer)
}
