package router

import (
	"github.com/gin-gonic/gin"
)

// registerClubRoutes 동아리 조회 라우트 등록 (공개)
func (rt *Router) registerClubRoutes(r *gin.Engine) {
	r.GET("/club/getClubList", rt.handlers.Club.GetClubList)
	r.GET("/club/getClubInfo", rt.handlers.Club.GetClubInfo)
}
