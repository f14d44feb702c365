package routes

import (
	"Peerpulse/internal/api/handlers/collegeFeed"
	commenthandlers "Peerpulse/internal/api/handlers/comments"
	"Peerpulse/internal/api/handlers/like"
	"Peerpulse/internal/api/handlers/post"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/comments"
	"Peerpulse/internal/core/likes"
	"Peerpulse/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// PostServices groups the services behind /api/v1/post
type PostServices struct {
	Posts    posts.Service
	Feed     collegeFeeds.Service
	Likes    likes.Service
	Comments comments.Service
}

// RegisterPostRoutes registers post, feed, like and comment endpoints.
// Every route requires authentication plus the matching role right.
func RegisterPostRoutes(r chi.Router, svc PostServices, guard Guard) {
	createHandler := post.NewCreateHandler(svc.Posts)
	getHandler := post.NewGetHandler(svc.Posts)
	feedHandler := collegeFeed.NewGetFeedHandler(svc.Feed)
	toggleHandler := like.NewToggleHandler(svc.Likes)
	listCommentsHandler := commenthandlers.NewListHandler(svc.Comments)
	createCommentHandler := commenthandlers.NewCreateHandler(svc.Comments)

	r.Route("/api/v1/post", func(r chi.Router) {
		guard.apply(r)

		r.With(middleware.RequireRight(middleware.RightCreatePost)).Post("/", createHandler.HandleCreate)
		r.With(middleware.RequireRight(middleware.RightCreatePoll)).Post("/poll", createHandler.HandleCreatePoll)

		// Static segments are registered ahead of /{postId}
		r.With(middleware.RequireRight(middleware.RightQueryCollegePosts)).Get("/feed", feedHandler.HandleGetFeed)
		r.With(middleware.RequireRight(middleware.RightLikePost)).Post("/like", toggleHandler.HandleToggle)

		r.With(middleware.RequireRight(middleware.RightGetPostByID)).Get("/{postId}", getHandler.HandleGet)
		r.With(middleware.RequireRight(middleware.RightQueryCommentsForPost)).Get("/{postId}/comments", listCommentsHandler.HandleList)
		r.With(middleware.RequireRight(middleware.RightCommentPost)).Post("/{postId}/comments", createCommentHandler.HandleCreate)
	})
}
