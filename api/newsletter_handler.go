package api

import (
	"net/http"

	"github.com/rpupo63/corporate-site-backend/services"
	"github.com/rs/zerolog/log"
)

type newsletterHandler struct {
	responder  Responder
	newsletter *services.NewsletterService
}

func newNewsletterHandler(newsletter *services.NewsletterService) newsletterHandler {
	return newsletterHandler{
		responder:  NewResponder(log.With().Str("handlerName", "newsletterHandler").Logger()),
		newsletter: newsletter,
	}
}

// subscribe registers a newsletter signup
// @Summary Newsletter signup
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param body body NewsletterRequest true "Subscriber"
// @Success 200 {object} NewsletterResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/newsletter [post]
func (h newsletterHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewsletterRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.newsletter.Subscribe(r.Context(), req.Email); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, NewsletterResponse{Success: true, Message: "Newsletter signup successful"})
	}
}
