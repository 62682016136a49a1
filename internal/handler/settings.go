package handler

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/middleware"
	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/service"
)

// SettingsPage 全局设置页面
func (h *Handler) SettingsPage(c *gin.Context) {
	settings, err := h.Admin.GetSettings()
	if err != nil {
		log.Printf("[Settings] 拉取设置失败: %v", err)
		settings = &model.AppSettings{}
	}

	c.HTML(http.StatusOK, "settings.html", h.RenderData(c, gin.H{
		"Title":    "全局设置 - " + h.Config.SiteName,
		"Settings": settings,
		"Error":    c.Query("error"),
		"Success":  c.Query("success"),
	}))
}

// SettingsUpdate 保存全局设置。布尔项沿用上游的字符串表示，
// 复选框勾选为 "true"，未勾选为 "false"。
func (h *Handler) SettingsUpdate(c *gin.Context) {
	settings := &model.AppSettings{
		AppName:            c.PostForm("app_name"),
		PrimaryColor:       c.PostForm("primary_color"),
		MaintenanceMode:    checkboxValue(c.PostForm("maintenance_mode")),
		TMDBAPIKey:         c.PostForm("tmdb_api_key"),
		MinVersion:         c.PostForm("min_version"),
		AnnouncementText:   c.PostForm("announcement_text"),
		AnnouncementActive: checkboxValue(c.PostForm("announcement_active")),
	}

	// 该接口要求 Bearer 令牌，从当前会话显式取出传入
	if err := h.Admin.UpdateSettings(settings, middleware.GetToken(c)); err != nil {
		log.Printf("[Settings] 保存失败: %v", err)
		msg := service.UserMessage(err, "保存设置失败")
		c.Redirect(http.StatusFound, "/settings?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/settings?success="+url.QueryEscape("设置已保存"))
}

func checkboxValue(raw string) string {
	if raw == "on" || raw == "true" {
		return "true"
	}
	return "false"
}
