package fakeapi

import "github.com/labstack/echo/v4"

func (s *Server) routes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/admin/login", s.login)

	authed := api.Group("", s.authenticate)
	authed.GET("/auth/profile", s.getProfile)
	authed.PUT("/auth/profile", s.updateProfile)
	authed.PUT("/auth/change-password", s.changePassword)
	authed.POST("/auth/register", s.registerUser)

	authed.GET("/products", s.listProducts)
	authed.POST("/products", s.createProduct)
	authed.GET("/products/stats", s.productStats)
	authed.POST("/products/upload", s.uploadImage)
	authed.GET("/products/:id", s.getProduct)
	authed.PUT("/products/:id", s.updateProduct)
	authed.DELETE("/products/:id", s.deleteProduct)
	authed.PATCH("/products/:id/toggle-status", s.toggleProduct)

	authed.GET("/categories", s.listCategories)
	authed.POST("/categories", s.createCategory)
	authed.PUT("/categories/:id", s.updateCategory)
	authed.DELETE("/categories/:id", s.deleteCategory)

	authed.GET("/orders", s.listOrders)
	authed.GET("/orders/:id", s.getOrder)
	authed.PUT("/orders/:id/status", s.updateOrderStatus)

	authed.GET("/users", s.listUsers)
	authed.GET("/users/:id", s.getUser)
	authed.PUT("/users/:id", s.updateUser)
	authed.DELETE("/users/:id", s.deleteUser)

	authed.GET("/banners", s.listBanners)
	authed.POST("/banners", s.createBanner)
	authed.POST("/banners/reorder", s.reorderBanners)
	authed.GET("/banners/:id", s.getBanner)
	authed.PUT("/banners/:id", s.updateBanner)
	authed.DELETE("/banners/:id", s.deleteBanner)
	authed.PATCH("/banners/:id/toggle", s.toggleBanner)

	authed.GET("/legal", s.listLegal)
	authed.POST("/legal", s.createLegal)
	authed.GET("/legal/:type", s.getLegal)
	authed.PUT("/legal/:type", s.updateLegal)
}
