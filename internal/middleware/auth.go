package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/session"
)

// RequireAuth 必须登录中间件。
// 只检查 Session 中是否存在令牌，不向上游校验令牌有效性——
// 过期或伪造的令牌同样放行面板页面，真正的拦截发生在上游 API。
func RequireAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := store.Current(c)
		if !ok {
			// 页面请求重定向到登录页，登录后跳回原路径
			if strings.Contains(c.GetHeader("Accept"), "text/html") {
				c.Redirect(http.StatusFound, "/login?redirect="+url.QueryEscape(c.Request.URL.Path))
				c.Abort()
				return
			}
			// API 请求返回 401
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			c.Abort()
			return
		}

		// 将登录态存入上下文
		c.Set("token", sess.Token)
		c.Set("username", sess.User.Username)

		c.Next()
	}
}

// GetToken 从上下文获取上游令牌（未登录返回空串）
func GetToken(c *gin.Context) string {
	if token, exists := c.Get("token"); exists {
		return token.(string)
	}
	return ""
}

// GetUsername 从上下文获取当前操作员用户名
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get("username"); exists {
		return name.(string)
	}
	return ""
}
