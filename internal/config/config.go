package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env        string
	AppSecret  string
	APIBaseURL string        // 上游 Nova Stream 后端地址
	Port       string
	SiteName   string
	SessionAge time.Duration // Session Cookie 有效期
}

// Load 加载配置
func Load() *Config {
	// 上游 API 地址，部署时通过 API_URL 指定（如 https://nova-stream-backend.onrender.com）
	// 本地开发默认 http://localhost:3000
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3000"
		fmt.Println("【提示】未设置 API_URL，使用本地默认值 http://localhost:3000")
	}

	appSecret := getEnv("APP_SECRET", "your-secret-key-change-in-production")
	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	sessionDays, _ := strconv.Atoi(getEnv("SESSION_DAYS", "7"))

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		AppSecret:  appSecret,
		APIBaseURL: apiURL,
		Port:       getEnv("PORT", "5008"),
		SiteName:   getEnv("SITE_NAME", "Nova Stream Admin"),
		SessionAge: time.Duration(sessionDays) * 24 * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
