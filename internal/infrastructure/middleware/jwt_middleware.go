package middleware

import (
	"net/http"
	"strings"

	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT 인증 미들웨어
// Access Token 을 검증하고 사용자 id 를 컨텍스트에 저장한다
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "로그인이 필요합니다",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Bearer Token 형식이 아닙니다",
			})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "만료되었거나 유효하지 않은 토큰입니다",
			})
			return
		}

		// Refresh Token 으로는 API 를 호출할 수 없다
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Access Token 으로 요청해 주세요",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
