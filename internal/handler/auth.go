package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/service"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
)

// LoginPage 登录页面
func (h *Handler) LoginPage(c *gin.Context) {
	// 已经登录的直接进面板
	if _, ok := h.Store.Current(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":    "登录 - " + h.Config.SiteName,
		"SiteName": h.Config.SiteName,
		"Redirect": c.Query("redirect"),
	})
}

// Login 登录处理：把账号密码转发给上游换令牌，成功后写入 Session
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	redirect := c.PostForm("redirect")

	if redirect == "" || redirect == "/" {
		redirect = "/dashboard"
	}

	result, err := h.Auth.Login(username, password)
	if err != nil {
		log.Printf("[Auth] 登录失败 (%s): %v", username, err)
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":    "登录 - " + h.Config.SiteName,
			"SiteName": h.Config.SiteName,
			"Redirect": redirect,
			"Error":    service.UserMessage(err, "登录失败，请检查账号密码"),
		})
		return
	}

	if err := h.Store.Save(c, result.Token, result.User); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title":    "登录 - " + h.Config.SiteName,
			"SiteName": h.Config.SiteName,
			"Error":    "登录失败，请重试",
		})
		return
	}

	c.Redirect(http.StatusFound, redirect)
}

// Logout 登出：令牌和用户信息一并清除，编辑现场随会话丢弃
func (h *Handler) Logout(c *gin.Context) {
	if sess, ok := h.Store.Current(c); ok {
		h.Flows.Drop(utils.HashToken(sess.Token))
	}

	if err := h.Store.Clear(c); err != nil {
		log.Printf("[Auth] 清理 Session 失败: %v", err)
	}

	c.Redirect(http.StatusFound, "/login")
}
