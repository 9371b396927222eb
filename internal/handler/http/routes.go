package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-pod-sync/internal/utils"
)

// Init builds the router of the sync API. Every protocol call is a POST.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.signResponses {
		router.Use(h.withHashing)
	}

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/register", h.register)
		r.Post("/user/login", h.login)
		r.Post("/user/token", h.refreshToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/user/last_sync_at", h.lastSyncAt())
		r.Post("/user/podcast/list", h.podcastList())
		r.Post("/user/podcast/update", h.podcastUpdate())
		r.Post("/user/playlist/list", h.playlistList())
		r.Post("/user/playlist/update", h.playlistUpdate())
		r.Post("/user/named_settings/update", h.namedSettings())
		r.Post("/user/bookmark/list", h.bookmarkList())
		r.Post("/user/bookmark/update", h.bookmarkUpdate())
		r.Post("/user/podcast_rating/list", h.ratingList())
		r.Post("/user/podcast_rating/add", h.ratingAdd())
		r.Post("/sync/episode/progress", h.episodeProgress())
		r.Post("/up_next/sync", h.upNextSync())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return router
}
