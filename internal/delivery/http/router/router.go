// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	deliverymiddleware "bazaar/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	BasketHandler  *handler.BasketHandler
	ContactHandler *handler.ContactHandler
	OrderHandler   *handler.OrderHandler
	PartnerHandler *handler.PartnerHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	LoggerMiddleware    *deliverymiddleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Public account and catalog routes
	userGroup := api.Group("/user")
	{
		userGroup.POST("/registrate", r.params.AccountHandler.Register)
		userGroup.POST("/registrate/confirm", r.params.AccountHandler.Confirm)
		userGroup.POST("/login", r.params.AccountHandler.Login)

		userGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
		userGroup.GET("/shops", r.params.CatalogHandler.ListShops)
		userGroup.GET("/product", r.params.CatalogHandler.ListProducts)
	}

	// Buyer routes that require authentication
	authGroup := api.Group("/user")
	authGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		authGroup.GET("/basket", r.params.BasketHandler.GetBasket)
		authGroup.POST("/basket", r.params.BasketHandler.AddItems)
		authGroup.PUT("/basket", r.params.BasketHandler.UpdateItems)
		authGroup.DELETE("/basket", r.params.BasketHandler.RemoveItems)

		authGroup.GET("/contact", r.params.ContactHandler.GetContact)
		authGroup.POST("/contact", r.params.ContactHandler.CreateContact)
		authGroup.PATCH("/contact", r.params.ContactHandler.PatchContact)
		authGroup.DELETE("/contact", r.params.ContactHandler.DeleteContact)

		authGroup.GET("/orders", r.params.OrderHandler.ListOrders)
		authGroup.POST("/orders", r.params.OrderHandler.Checkout)
		authGroup.PUT("/orders", r.params.OrderHandler.Cancel)
	}

	// Shop routes that require authentication and the shop role
	shopGroup := api.Group("/shop")
	shopGroup.Use(r.params.AuthMiddleware.Authenticate)
	shopGroup.Use(r.params.AuthMiddleware.RequireShop)
	{
		shopGroup.POST("/goods", r.params.PartnerHandler.ImportGoods)
		shopGroup.GET("/state", r.params.PartnerHandler.GetState)
		shopGroup.PUT("/state", r.params.PartnerHandler.SetState)
		shopGroup.GET("/orders", r.params.PartnerHandler.ListOrders)
	}
}
