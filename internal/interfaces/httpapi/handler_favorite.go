package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
)

func (h *Handler) ListFavoriteMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavoriteMatches")
	defer span.End()

	matches, err := h.favoriteService.ListFavoriteMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list favorite matches failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) ListFavoritePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFavoritePlayers")
	defer span.End()

	players, err := h.favoriteService.ListFavoritePlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list favorite players failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetFavoriteMatch(w http.ResponseWriter, r *http.Request) {
	h.getFavorite(w, r, "httpapi.Handler.GetFavoriteMatch", favorite.KindMatch, r.PathValue("matchKey"))
}

func (h *Handler) AddFavoriteMatch(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, "httpapi.Handler.AddFavoriteMatch", favorite.KindMatch, r.PathValue("matchKey"), true)
}

func (h *Handler) RemoveFavoriteMatch(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, "httpapi.Handler.RemoveFavoriteMatch", favorite.KindMatch, r.PathValue("matchKey"), false)
}

func (h *Handler) GetFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	h.getFavorite(w, r, "httpapi.Handler.GetFavoritePlayer", favorite.KindPlayer, r.PathValue("playerKey"))
}

func (h *Handler) AddFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, "httpapi.Handler.AddFavoritePlayer", favorite.KindPlayer, r.PathValue("playerKey"), true)
}

func (h *Handler) RemoveFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, "httpapi.Handler.RemoveFavoritePlayer", favorite.KindPlayer, r.PathValue("playerKey"), false)
}

func (h *Handler) getFavorite(w http.ResponseWriter, r *http.Request, spanName string, kind favorite.Kind, key string) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	exists, err := h.favoriteService.IsFavorite(ctx, kind, key)
	if err != nil {
		h.logger.WarnContext(ctx, "check favorite failed", "kind", kind, "key", key, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, favoriteStateDTO{Kind: string(kind), Key: key, Favorite: exists})
}

// setFavorite adds or removes one favorite; both directions are idempotent.
func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request, spanName string, kind favorite.Kind, key string, add bool) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	var err error
	if add {
		err = h.favoriteService.Add(ctx, kind, key)
	} else {
		err = h.favoriteService.Remove(ctx, kind, key)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "update favorite failed", "kind", kind, "key", key, "add", add, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, favoriteStateDTO{Kind: string(kind), Key: key, Favorite: add})
}
