package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

const (
	pathRegister        = "/user/register"
	pathLogin           = "/user/login"
	pathToken           = "/user/token"
	pathLastSyncAt      = "/user/last_sync_at"
	pathPodcastList     = "/user/podcast/list"
	pathPodcastUpdate   = "/user/podcast/update"
	pathPlaylistList    = "/user/playlist/list"
	pathPlaylistUpdate  = "/user/playlist/update"
	pathEpisodeProgress = "/sync/episode/progress"
	pathUpNextSync      = "/up_next/sync"
	pathNamedSettings   = "/user/named_settings/update"
	pathBookmarkList    = "/user/bookmark/list"
	pathBookmarkUpdate  = "/user/bookmark/update"
	pathRatingList      = "/user/podcast_rating/list"
	pathRatingAdd       = "/user/podcast_rating/add"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises adapterCfg.HTTPAddress and configures the
// underlying client with the resolved base URL and request timeout.
//
// Returns [ErrInvalidAddress] if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.LoginRequest) (models.Credential, error) {
	var token models.TokenResponse
	if err := h.post(ctx, h.client.R(), pathRegister, req, &token); err != nil {
		return models.Credential{}, err
	}
	return credentialFrom(token, models.Credential{Login: req.Login})
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Credential, error) {
	var token models.TokenResponse
	if err := h.post(ctx, h.client.R(), pathLogin, req, &token); err != nil {
		return models.Credential{}, err
	}
	return credentialFrom(token, models.Credential{Login: req.Login})
}

func (h *httpServerAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.Credential, error) {
	var token models.TokenResponse
	body := models.RefreshTokenRequest{RefreshToken: refreshToken}
	if err := h.post(ctx, h.client.R(), pathToken, body, &token); err != nil {
		return models.Credential{}, err
	}
	return credentialFrom(token, models.Credential{RefreshToken: refreshToken})
}

func (h *httpServerAdapter) GetLastSyncAt(ctx context.Context, cred models.Credential) (models.LastSyncAtResponse, error) {
	var resp models.LastSyncAtResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathLastSyncAt, nil, &resp)
	return resp, err
}

func (h *httpServerAdapter) GetPodcastList(ctx context.Context, cred models.Credential, req models.PodcastListRequest) (models.PodcastListResponse, error) {
	var resp models.PodcastListResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathPodcastList, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) PushPodcastChanges(ctx context.Context, cred models.Credential, req models.PodcastChangesRequest) (models.SyncAck, error) {
	return h.push(ctx, cred, pathPodcastUpdate, req)
}

func (h *httpServerAdapter) GetPlaylistList(ctx context.Context, cred models.Credential, req models.PlaylistListRequest) (models.PlaylistListResponse, error) {
	var resp models.PlaylistListResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathPlaylistList, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) PushPlaylistChanges(ctx context.Context, cred models.Credential, req models.PlaylistChangesRequest) (models.SyncAck, error) {
	return h.push(ctx, cred, pathPlaylistUpdate, req)
}

func (h *httpServerAdapter) PushEpisodeProgress(ctx context.Context, cred models.Credential, req models.EpisodeProgressRequest) (models.SyncAck, error) {
	return h.push(ctx, cred, pathEpisodeProgress, req)
}

func (h *httpServerAdapter) UpNextSync(ctx context.Context, cred models.Credential, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error) {
	var resp models.UpNextSyncResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathUpNextSync, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) UpdateNamedSettings(ctx context.Context, cred models.Credential, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error) {
	var resp models.NamedSettingsResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathNamedSettings, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) GetBookmarks(ctx context.Context, cred models.Credential) (models.BookmarkListResponse, error) {
	var resp models.BookmarkListResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathBookmarkList, nil, &resp)
	return resp, err
}

func (h *httpServerAdapter) PushBookmarks(ctx context.Context, cred models.Credential, req models.BookmarkChangesRequest) (models.SyncAck, error) {
	return h.push(ctx, cred, pathBookmarkUpdate, req)
}

func (h *httpServerAdapter) GetRatings(ctx context.Context, cred models.Credential) (models.RatingListResponse, error) {
	var resp models.RatingListResponse
	err := h.post(ctx, authedRequest(h.client, cred), pathRatingList, nil, &resp)
	return resp, err
}

func (h *httpServerAdapter) AddRating(ctx context.Context, cred models.Credential, req models.RatingRequest) (models.SyncAck, error) {
	return h.push(ctx, cred, pathRatingAdd, req)
}

// push posts a write. An empty 2xx body is a valid acknowledgement.
func (h *httpServerAdapter) push(ctx context.Context, cred models.Credential, path string, body any) (models.SyncAck, error) {
	resp, err := h.do(ctx, authedRequest(h.client, cred), path, body)
	if err != nil {
		return models.SyncAck{}, err
	}

	var ack models.SyncAck
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return ack, nil
	}
	if err = decode(path, resp.Body(), &ack); err != nil {
		return models.SyncAck{}, err
	}
	return ack, nil
}

// post sends body and decodes the response into result. An empty body is
// malformed.
func (h *httpServerAdapter) post(ctx context.Context, req *resty.Request, path string, body any, result any) error {
	resp, err := h.do(ctx, req, path, body)
	if err != nil {
		return err
	}
	return decode(path, resp.Body(), result)
}

func (h *httpServerAdapter) do(ctx context.Context, req *resty.Request, path string, body any) (*resty.Response, error) {
	req.SetContext(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpServerAdapter.do").
			Str("path", path).
			Msg("request failed before a response was received")
		return nil, fmt.Errorf("%w: %s: %w", ErrNoNetwork, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

func decode(path string, body []byte, result any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: %s: empty body", ErrMalformedResponse, path)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrMalformedResponse, path, err)
	}
	return nil
}

func authedRequest(client *utils.HTTPClient, cred models.Credential) *resty.Request {
	req := client.R()
	if token := strings.TrimSpace(cred.AccessToken); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func credentialFrom(token models.TokenResponse, prev models.Credential) (models.Credential, error) {
	if token.AccessToken == "" {
		return models.Credential{}, fmt.Errorf("%w: token response without access token", ErrMalformedResponse)
	}
	return models.CredentialFromToken(token, prev), nil
}
