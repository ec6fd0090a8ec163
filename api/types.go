package api

import (
	"github.com/rpupo63/corporate-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler   blogPostHandler
	uploadHandler     uploadHandler
	newsletterHandler newsletterHandler
	adminHandler      adminHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error  string `json:"error" example:"Missing required field: title"`
	Status string `json:"status" example:"error"`
	Field  string `json:"field,omitempty" example:"title"`
}

type BlogPostCollection struct {
	Posts []models.BlogPost `json:"posts"`
}

type BlogPostEnvelope struct {
	Post models.BlogPost `json:"post"`
}

type DeleteBlogPostResponse struct {
	Message   string `json:"message" example:"Blog post deleted successfully"`
	DeletedID string `json:"deletedId" example:"42"`
}

// createBlogPostRequest accepts the featuredImage/imageAlt names the site's
// editor sends alongside the canonical ones
type createBlogPostRequest struct {
	models.CreateBlogPost
	FeaturedImage string `json:"featuredImage,omitempty"`
	ImageAlt      string `json:"imageAlt,omitempty"`
}

func (req createBlogPostRequest) toInput() models.CreateBlogPost {
	input := req.CreateBlogPost
	if input.FeaturedImageURL == "" {
		input.FeaturedImageURL = req.FeaturedImage
	}
	if input.FeaturedImageAlt == "" {
		input.FeaturedImageAlt = req.ImageAlt
	}
	return input
}

type updateBlogPostRequest struct {
	models.UpdateBlogPost
	FeaturedImage *string `json:"featuredImage,omitempty"`
	ImageAlt      *string `json:"imageAlt,omitempty"`
}

func (req updateBlogPostRequest) toInput() models.UpdateBlogPost {
	input := req.UpdateBlogPost
	if input.FeaturedImageURL == nil {
		input.FeaturedImageURL = req.FeaturedImage
	}
	if input.FeaturedImageAlt == nil {
		input.FeaturedImageAlt = req.ImageAlt
	}
	return input
}

type UploadResponse struct {
	URL     string `json:"url"`
	Storage string `json:"storage" example:"s3"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type StatusResponse struct {
	Mode                 string `json:"mode" example:"relational"`
	ImageStorage         string `json:"imageStorage" example:"inline"`
	AdminProtected       bool   `json:"adminProtected"`
	NewsletterForwarding bool   `json:"newsletterForwarding"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Uptime string `json:"uptime" example:"3h2m10s"`
}
