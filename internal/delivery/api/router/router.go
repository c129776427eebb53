// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecovis/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	WasteHandler     *handler.WasteHandler
	EmissionsHandler *handler.EmissionsHandler
	ForumHandler     *handler.ForumHandler
	ProductHandler   *handler.ProductHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	wasteHandler     *handler.WasteHandler
	emissionsHandler *handler.EmissionsHandler
	forumHandler     *handler.ForumHandler
	productHandler   *handler.ProductHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		wasteHandler:     params.WasteHandler,
		emissionsHandler: params.EmissionsHandler,
		forumHandler:     params.ForumHandler,
		productHandler:   params.ProductHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.GET("/:id/activities", r.userHandler.ListActivities)
		usersGroup.GET("/:id/waste-recognitions", r.wasteHandler.ListByUser)
		usersGroup.GET("/:id/emissions-calculations", r.emissionsHandler.ListByUser)
	}

	api.POST("/waste-recognition", r.wasteHandler.CreateRecognition)
	api.POST("/waste-recognition/analyze", r.wasteHandler.Analyze)

	api.POST("/emissions-calculations", r.emissionsHandler.CreateCalculation)
	api.POST("/emissions/calculate", r.emissionsHandler.Calculate)

	forumGroup := api.Group("/forum/posts")
	{
		forumGroup.POST("", r.forumHandler.CreatePost)
		forumGroup.GET("", r.forumHandler.ListPosts)
		forumGroup.GET("/:id", r.forumHandler.GetPost)
		forumGroup.POST("/:id/like", r.forumHandler.LikePost)
		forumGroup.DELETE("/:id/like", r.forumHandler.UnlikePost)
		forumGroup.POST("/:id/comments", r.forumHandler.CreateComment)
		forumGroup.GET("/:id/comments", r.forumHandler.ListComments)
	}

	marketplaceGroup := api.Group("/marketplace/products")
	{
		marketplaceGroup.GET("", r.productHandler.ListProducts)
		marketplaceGroup.GET("/:id", r.productHandler.GetProduct)
	}
}
