package server

import "github.com/labstack/echo/v4"

// registerRoutes lays out the public surface and the two admin
// authorization tiers: some privileged operations require only allowlist
// membership while others require live project membership.
func registerRoutes(e *echo.Echo, p Params) {
	api := e.Group("/api")

	// Public surface
	api.POST("/auth/login", p.AuthHandler.Login)
	api.GET("/events", p.ScheduleHandler.Upcoming)
	api.GET("/calendar/:year/:month", p.ScheduleHandler.MonthCounts)
	api.GET("/menu", p.MenuHandler.ActiveMenu)
	api.POST("/bookings", p.BookingHandler.Submit)
	api.GET("/social/posts", p.SocialHandler.Posts)
	api.GET("/geocode/suggest", p.GeocodeHandler.Suggest)

	// Trusted-caller surface, guarded by the shared internal secret
	api.POST("/internal/login-failure", p.AuthHandler.RegisterFailure,
		p.AuthMiddleware.RequireInternalSecret())

	// Admin surface; every route needs a verified bearer token
	admin := api.Group("/admin", p.AuthMiddleware.RequireToken())

	// Any verified identity may manage item images
	admin.POST("/menu/items/:id/image", p.MenuHandler.UploadItemImage)
	admin.DELETE("/menu/items/:id/image", p.MenuHandler.DeleteItemImage)

	// Allowlist tier
	listed := admin.Group("", p.AuthMiddleware.RequireAllowlist())
	listed.GET("/users", p.AuthHandler.ListUsers)
	listed.POST("/users", p.AuthHandler.CreateUser)
	listed.DELETE("/users/:uid", p.AuthHandler.DeleteUser)
	listed.GET("/project-members", p.AuthHandler.ListProjectMembers)

	listed.GET("/events", p.ScheduleHandler.List)
	listed.POST("/events", p.ScheduleHandler.Create)
	listed.PUT("/events/:id", p.ScheduleHandler.Update)
	listed.DELETE("/events/:id", p.ScheduleHandler.Delete)

	listed.GET("/menus", p.MenuHandler.ListMenus)
	listed.POST("/menus", p.MenuHandler.CreateMenu)
	listed.DELETE("/menus/:id", p.MenuHandler.DeleteMenu)
	listed.POST("/menus/:id/sections", p.MenuHandler.CreateSection)
	listed.DELETE("/menu/sections/:id", p.MenuHandler.DeleteSection)
	listed.POST("/menu/sections/:id/items", p.MenuHandler.CreateItem)
	listed.PUT("/menu/items/:id", p.MenuHandler.UpdateItem)
	listed.DELETE("/menu/items/:id", p.MenuHandler.DeleteItem)

	listed.GET("/bookings", p.BookingHandler.List)
	listed.POST("/bookings/:id/close", p.BookingHandler.Close)

	// Live-IAM tier
	gated := admin.Group("", p.AuthMiddleware.RequireProjectMember())
	gated.POST("/users/:uid/disable", p.AuthHandler.DisableUser)
	gated.POST("/users/:uid/enable", p.AuthHandler.EnableUser)
	gated.POST("/users/:uid/admin-claim", p.AuthHandler.SetAdminClaim)
	gated.GET("/allowlist", p.AuthHandler.ListAllowlist)
	gated.POST("/allowlist", p.AuthHandler.AddAllowlistEntry)
	gated.DELETE("/allowlist/:email", p.AuthHandler.RemoveAllowlistEntry)
}
