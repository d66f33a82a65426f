package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/server/http/handlers"
	"github.com/polkiloo/gophershop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.Default())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	couponHandler := handlers.NewCouponHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/category", catalogHandler.ListCategories)
	api.GET("/category/:id", catalogHandler.GetCategory)
	api.GET("/subcategory", catalogHandler.ListSubcategories)
	api.GET("/subcategory/:id", catalogHandler.GetSubcategory)
	api.GET("/brand", catalogHandler.ListBrands)
	api.GET("/brand/:id", catalogHandler.GetBrand)
	api.GET("/product", productHandler.List)
	api.GET("/product/:id", productHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.POST("/category", catalogHandler.CreateCategory)
	authed.PATCH("/category/:id", catalogHandler.UpdateCategory)
	authed.DELETE("/category/:id", catalogHandler.DeleteCategory)

	authed.POST("/subcategory", catalogHandler.CreateSubcategory)
	authed.PATCH("/subcategory/:id", catalogHandler.UpdateSubcategory)
	authed.DELETE("/subcategory/:id", catalogHandler.DeleteSubcategory)

	authed.POST("/brand", catalogHandler.CreateBrand)
	authed.PATCH("/brand/:id", catalogHandler.UpdateBrand)
	authed.DELETE("/brand/:id", catalogHandler.DeleteBrand)

	authed.POST("/product", productHandler.Create)
	authed.PATCH("/product/:id/stock", productHandler.SetStock)

	authed.POST("/coupon", couponHandler.Create)
	authed.GET("/coupon", couponHandler.List)
	authed.GET("/coupon/:code", couponHandler.Get)

	authed.GET("/cart", cartHandler.Get)
	authed.PUT("/cart", cartHandler.PutItem)
	authed.DELETE("/cart/:productId", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.Clear)

	authed.POST("/order", orderHandler.Place)
	authed.GET("/order", orderHandler.List)
	authed.PATCH("/order/:orderId", orderHandler.Cancel)

	return engine
}
