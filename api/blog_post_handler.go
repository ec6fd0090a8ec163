package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/rpupo63/corporate-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxJSONBodySize = 1 << 20

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	blog      *services.BlogService
}

func newBlogPostHandler(blog *services.BlogService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blog:      blog,
	}
}

// listBlogPosts returns posts, optionally filtered
// @Summary List blog posts
// @Description Returns posts newest first. Only one filter applies, in the order search, tag, featured. Drafts are listed only for admins asking with includeUnpublished.
// @Tags Blog Posts
// @Produce json
// @Param search query string false "Case-insensitive match on title, excerpt and content, or an exact tag"
// @Param tag query string false "Exact tag"
// @Param featured query bool false "Only featured posts"
// @Param includeUnpublished query bool false "Include drafts and archived posts (admin)"
// @Success 200 {object} BlogPostCollection
// @Failure 500 {object} ErrorResponse
// @Router /api/blog [get]
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		featured, _ := strconv.ParseBool(query.Get("featured"))
		includeUnpublished, _ := strconv.ParseBool(query.Get("includeUnpublished"))
		if _, isAdmin := ctxGetAdminSubject(r.Context()); !isAdmin {
			includeUnpublished = false
		}

		posts, err := h.blog.List(r.Context(), services.ListQuery{
			Search:             query.Get("search"),
			Tag:                query.Get("tag"),
			Featured:           featured,
			IncludeUnpublished: includeUnpublished,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{Posts: posts})
	}
}

// getBlogPost
// @Summary Get blog post
// @Tags Blog Posts
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} BlogPostEnvelope
// @Failure 404 {object} ErrorResponse
// @Router /api/blog/{id} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.blog.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, BlogPostEnvelope{Post: *post})
	}
}

// getBlogPostBySlug
// @Summary Get blog post by slug
// @Tags Blog Posts
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} BlogPostEnvelope
// @Failure 404 {object} ErrorResponse
// @Router /api/blog/slug/{slug} [get]
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.blog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, BlogPostEnvelope{Post: *post})
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Slug and reading time are derived from title and content. With deriveExcerpt=true an empty excerpt is built from the content.
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blogPost body models.CreateBlogPost true "Blog post data"
// @Param deriveExcerpt query bool false "Derive a missing excerpt from content"
// @Success 201 {object} BlogPostEnvelope
// @Failure 400 {object} ErrorResponse "Missing or invalid field, or malformed JSON"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A post with the same slug exists"
// @Failure 500 {object} ErrorResponse
// @Router /api/blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBlogPostRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, err)
			return
		}

		input := req.toInput()
		if derive, _ := strconv.ParseBool(r.URL.Query().Get("deriveExcerpt")); derive && input.Excerpt == "" {
			input.Excerpt = models.DeriveExcerpt(input.Content)
		}

		post, err := h.blog.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("Blog post created")
		h.responder.WriteJSONWithStatus(w, http.StatusCreated, BlogPostEnvelope{Post: *post})
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Only supplied fields change. featuredImage and imageAlt are accepted as aliases of featuredImageUrl and featuredImageAlt.
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog post ID"
// @Param blogPost body models.UpdateBlogPost true "Fields to change"
// @Success 200 {object} BlogPostEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/blog/{id} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBlogPostRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode blog post update body")
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blog.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, BlogPostEnvelope{Post: *post})
	}
}

// deleteBlogPost
// @Summary Delete blog post
// @Tags Blog Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog post ID"
// @Success 200 {object} DeleteBlogPostResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/blog/{id} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := h.blog.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("id", id).Msg("Blog post deleted")
		h.responder.WriteJSON(w, DeleteBlogPostResponse{
			Message:   "Blog post deleted successfully",
			DeletedID: id,
		})
	}
}

// decodeJSONBody decodes a single JSON value from a size-limited body
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
		case errors.Is(err, io.EOF):
			return errs.NewMalformedPayloadError("JSON", err)
		default:
			return errs.NewInvalidJSONError(err)
		}
	}
	return nil
}
