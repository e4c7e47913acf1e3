package router

import (
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerWishlistRoutes 위시리스트 라우트 등록
func (rt *Router) registerWishlistRoutes(r *gin.Engine) {
	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.Use(middleware.JWTAuth())
	{
		wishlistGroup.POST("/toggle", rt.handlers.Wishlist.Toggle)
		wishlistGroup.GET("/getMyWishlist", rt.handlers.Wishlist.GetMyWishlist)
	}
}
