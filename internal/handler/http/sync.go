package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

// serveAccount decodes the request body into Req, runs call for the login
// the auth middleware stored in the context and writes the result as JSON.
// An empty body decodes to the zero Req.
func serveAccount[Req, Resp any](funcName string, call func(ctx context.Context, login string, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		login, found := utils.GetLoginFromContext(ctx)
		if !found {
			log.Err(ErrNoLoginInContext).Str("func", funcName).Send()
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
			utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		resp, err := call(ctx, login, req)
		if err != nil {
			status := statusFromError(err)
			log.Err(err).Str("func", funcName).Int("status", status).Msg("sync request failed")
			message := err.Error()
			if status >= http.StatusInternalServerError {
				message = http.StatusText(status)
			}
			utils.WriteError(w, message, status)
			return
		}

		utils.WriteJSON(w, resp, http.StatusOK)
	}
}

// noBody adapts a call without a request body.
func noBody[Resp any](call func(ctx context.Context, login string) (Resp, error)) func(context.Context, string, struct{}) (Resp, error) {
	return func(ctx context.Context, login string, _ struct{}) (Resp, error) {
		return call(ctx, login)
	}
}

// withBase drops the {m, v} envelope of list requests.
func withBase[Req, Resp any](call func(ctx context.Context, login string) (Resp, error)) func(context.Context, string, Req) (Resp, error) {
	return func(ctx context.Context, login string, _ Req) (Resp, error) {
		return call(ctx, login)
	}
}

func (h *Handler) lastSyncAt() http.HandlerFunc {
	return serveAccount("*Handler.lastSyncAt", noBody(h.services.AccountService.LastSyncAt))
}

func (h *Handler) podcastList() http.HandlerFunc {
	return serveAccount("*Handler.podcastList", withBase[models.PodcastListRequest](h.services.AccountService.PodcastList))
}

func (h *Handler) podcastUpdate() http.HandlerFunc {
	return serveAccount("*Handler.podcastUpdate", h.services.AccountService.UpdatePodcasts)
}

func (h *Handler) playlistList() http.HandlerFunc {
	return serveAccount("*Handler.playlistList", withBase[models.PlaylistListRequest](h.services.AccountService.PlaylistList))
}

func (h *Handler) playlistUpdate() http.HandlerFunc {
	return serveAccount("*Handler.playlistUpdate", h.services.AccountService.UpdatePlaylists)
}

func (h *Handler) episodeProgress() http.HandlerFunc {
	return serveAccount("*Handler.episodeProgress", h.services.AccountService.UpdateEpisodeProgress)
}

func (h *Handler) upNextSync() http.HandlerFunc {
	return serveAccount("*Handler.upNextSync", h.services.AccountService.UpNextSync)
}

func (h *Handler) namedSettings() http.HandlerFunc {
	return serveAccount("*Handler.namedSettings", h.services.AccountService.UpdateNamedSettings)
}

func (h *Handler) bookmarkList() http.HandlerFunc {
	return serveAccount("*Handler.bookmarkList", noBody(h.services.AccountService.BookmarkList))
}

func (h *Handler) bookmarkUpdate() http.HandlerFunc {
	return serveAccount("*Handler.bookmarkUpdate", h.services.AccountService.UpdateBookmarks)
}

func (h *Handler) ratingList() http.HandlerFunc {
	return serveAccount("*Handler.ratingList", noBody(h.services.AccountService.RatingList))
}

func (h *Handler) ratingAdd() http.HandlerFunc {
	return serveAccount("*Handler.ratingAdd", h.services.AccountService.AddRating)
}
