package main

import (
	"context"
	"encoding/gob"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ErkanYT/movie-admin-panel/internal/config"
	"github.com/ErkanYT/movie-admin-panel/internal/handler"
	"github.com/ErkanYT/movie-admin-panel/internal/middleware"
	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/router"
	"github.com/ErkanYT/movie-admin-panel/internal/session"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
)

func main() {
	// 注册 Session 模型
	gob.Register(model.SessionUser{})

	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化缓存
	utils.InitCache()

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 设置 Session 中间件
	cookieStore := cookie.NewStore([]byte(cfg.AppSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionAge.Seconds()),
		HttpOnly: true,
		Secure:   false, // 关键：非 HTTPS 环境必须为 false
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("admin_session", cookieStore))

	// 加载模板（使用 multitemplate 解决继承问题）
	r.HTMLRender = router.LoadTemplates("./web/templates")

	// 静态文件
	r.Static("/static", "./web/static")

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// 初始化会话存取与 Handler
	store := session.NewStore()
	h := handler.NewHandler(cfg, store)

	// 注册路由
	router.RegisterRoutes(r, h, store)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("管理面板启动于 http://localhost:%s (上游 API: %s)", cfg.Port, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	// kill (no parameter) 默认发送 syscall.SIGTERM
	// kill -2 是 syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}
