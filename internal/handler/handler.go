package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/config"
	"github.com/ErkanYT/movie-admin-panel/internal/middleware"
	"github.com/ErkanYT/movie-admin-panel/internal/service"
	"github.com/ErkanYT/movie-admin-panel/internal/session"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
	"github.com/ErkanYT/movie-admin-panel/internal/workflow"
)

// Handler HTTP 处理器
type Handler struct {
	Config  *config.Config
	Store   *session.Store
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Admin   *service.AdminService
	Flows   *workflow.Hub
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, store *session.Store) *Handler {
	// 上游 API 客户端与各服务
	client := service.NewClient(cfg.APIBaseURL)
	catalog := service.NewCatalogService(client)
	tmdb := service.NewTMDBService(client)

	return &Handler{
		Config:  cfg,
		Store:   store,
		Auth:    service.NewAuthService(client),
		Catalog: catalog,
		Admin:   service.NewAdminService(client),
		Flows:   workflow.NewHub(service.NewAPI(catalog, tmdb)),
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	// 基础数据
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"Path":     c.Request.URL.Path,
	}

	// 注入登录态
	if sess, ok := h.Store.Current(c); ok {
		res["Username"] = sess.User.Username
	}

	// 菜单高亮逻辑
	res["ActiveMenu"] = h.getActiveMenu(c.Request.URL.Path)

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// getActiveMenu 根据路径判断当前高亮菜单
func (h *Handler) getActiveMenu(path string) string {
	switch {
	case path == "/dashboard":
		return "dashboard"
	case strings.HasPrefix(path, "/content"):
		return "content"
	case strings.HasPrefix(path, "/requests"):
		return "requests"
	case strings.HasPrefix(path, "/referers"):
		return "referers"
	case strings.HasPrefix(path, "/settings"):
		return "settings"
	default:
		return ""
	}
}

// NotFoundPage 404 页面
func (h *Handler) NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "页面未找到 - " + h.Config.SiteName,
	}))
}

// sessionKey 当前会话在工作流分发器里的键
func (h *Handler) sessionKey(c *gin.Context) string {
	return utils.HashToken(middleware.GetToken(c))
}
