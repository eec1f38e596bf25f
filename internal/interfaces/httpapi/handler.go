package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
)

type Handler struct {
	matchService    *usecase.MatchService
	playerService   *usecase.PlayerService
	rankingService  *usecase.RankingService
	favoriteService *usecase.FavoriteService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	rankingService *usecase.RankingService,
	favoriteService *usecase.FavoriteService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:    matchService,
		playerService:   playerService,
		rankingService:  rankingService,
		favoriteService: favoriteService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventTypes")
	defer span.End()

	items, err := h.rankingService.ListEventTypes(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list event types failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, eventTypesToDTO(items))
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	query := fixturesQueryFrom(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(w, err)
		return
	}

	matches, err := h.matchService.ListFixtures(ctx, query.filter())
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed",
			"date_start", query.DateStart,
			"date_stop", query.DateStop,
			"error", err,
		)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) ListLiveScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveScores")
	defer span.End()

	query := liveScoresQueryFrom(r.URL.Query())
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(w, err)
		return
	}

	matches, err := h.matchService.ListLive(ctx, query.filter())
	if err != nil {
		h.logger.WarnContext(ctx, "list live scores failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchKey := r.PathValue("matchKey")
	match, err := h.matchService.GetMatch(ctx, matchKey)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_key", matchKey, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, matchToDTO(match))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerKey := r.PathValue("playerKey")
	details, err := h.playerService.GetPlayerDetails(ctx, playerKey)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_key", playerKey, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, playerDetailsDTO{
		Player:        playerToDTO(details.Player),
		RecentMatches: matchesToDTO(details.RecentMatches),
	})
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	rankingType := r.PathValue("rankingType")
	query := rankingsQuery{Search: queryValue(r.URL.Query(), "search")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(w, err)
		return
	}

	rankings, err := h.rankingService.ListRankings(ctx, rankingType, query.Search)
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "ranking_type", rankingType, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rankingsToDTO(rankings))
}
