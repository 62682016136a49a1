package router

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"github.com/ErkanYT/movie-admin-panel/internal/handler"
	"github.com/ErkanYT/movie-admin-panel/internal/middleware"
	"github.com/ErkanYT/movie-admin-panel/internal/session"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler, store *session.Store) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 未匹配的路径渲染 404 页面
	r.NoRoute(h.NotFoundPage)

	// ==================== 公开页面 ====================
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	// ==================== 管理面板（需要登录）====================
	panel := r.Group("/")
	panel.Use(middleware.RequireAuth(store))
	{
		panel.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
		panel.GET("/dashboard", h.Dashboard)

		// 内容库
		panel.GET("/content", h.ContentPage)
		panel.POST("/content", h.ContentCreate)
		panel.POST("/content/mode", h.ContentModeSet)
		panel.POST("/content/tmdb", h.ContentTMDBFetch)
		panel.DELETE("/content/:id", h.ContentDelete)

		// 季/集管理
		panel.GET("/content/:id/seasons", h.SeasonsPage)
		panel.POST("/content/:id/seasons", h.SeasonAdd)
		panel.POST("/content/:id/seasons/toggle", h.SeasonToggle)
		panel.POST("/content/:id/seasons/:seasonId/episodes", h.EpisodeAdd)

		// 求片
		panel.GET("/requests", h.RequestsPage)
		panel.POST("/requests/:id/status", h.RequestStatusUpdate)

		// 防盗链白名单
		panel.GET("/referers", h.ReferersPage)
		panel.POST("/referers", h.RefererCreate)
		panel.DELETE("/referers/:id", h.RefererDelete)

		// 全局设置
		panel.GET("/settings", h.SettingsPage)
		panel.POST("/settings", h.SettingsUpdate)
	}
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局和局部模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"default": func(defaultValue, value interface{}) interface{} {
			switch v := value.(type) {
			case string:
				if v == "" {
					return defaultValue
				}
			case int:
				if v == 0 {
					return defaultValue
				}
			case nil:
				return defaultValue
			}
			return value
		},
	}

	// 注册所有页面模板
	pages := []string{
		"login", "404",
		"dashboard", "content", "seasons",
		"requests", "referers", "settings",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	return r
}
