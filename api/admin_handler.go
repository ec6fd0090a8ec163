package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/corporate-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	auth        *adminAuth
	blog        *services.BlogService
	images      *services.ImageStorage
	newsletter  *services.NewsletterService
	startupTime time.Time
}

func newAdminHandler(auth *adminAuth, deps Dependencies, startupTime time.Time) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		auth:        auth,
		blog:        deps.Blog,
		images:      deps.Images,
		newsletter:  deps.Newsletter,
		startupTime: startupTime,
	}
}

// login exchanges the admin password for a bearer token
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/login [post]
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, expiresAt, err := h.auth.login(req.Password)
		if err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("Rejected admin login")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		})
	}
}

// status reports which backends this process is using
// @Summary Backend status
// @Tags Admin
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /api/status [get]
func (h adminHandler) status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, StatusResponse{
			Mode:                 string(h.blog.Mode()),
			ImageStorage:         h.images.Backend(),
			AdminProtected:       h.auth.enabled(),
			NewsletterForwarding: h.newsletter.Forwarding(),
		})
	}
}

// health
// @Summary Liveness probe
// @Tags Admin
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h adminHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
