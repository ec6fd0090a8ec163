package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, auth *adminAuth, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		blogPostHandler:   newBlogPostHandler(deps.Blog),
		uploadHandler:     newUploadHandler(deps.Images),
		newsletterHandler: newNewsletterHandler(deps.Newsletter),
		adminHandler:      newAdminHandler(auth, deps, startupTime),
	}
}
