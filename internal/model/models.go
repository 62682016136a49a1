package model

import "time"

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TMDBMetadata 元数据补全结果。图片地址已归一化为完整 URL。
type TMDBMetadata struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	BackdropURL string  `json:"backdrop_url"`
	Rating      float64 `json:"rating"`
	ReleaseDate string  `json:"release_date"`
	CategoryID  int     `json:"category_id"`
}

// RefererEntry 防盗链白名单条目。IsGlobal 仅作展示，不保证唯一。
type RefererEntry struct {
	ID       int    `json:"id"`
	SiteName string `json:"site_name"`
	URL      string `json:"url"`
	IsGlobal bool   `json:"is_global"`
}

// 求片状态
const (
	RequestPending   = "pending"
	RequestCompleted = "completed"
	RequestRejected  = "rejected"
)

// ContentRequest 用户求片记录
type ContentRequest struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AppSettings 全局设置。上游把布尔值按字符串 "true"/"false" 存储，
// 这里原样保留，不做类型转换。
type AppSettings struct {
	AppName            string `json:"app_name"`
	PrimaryColor       string `json:"primary_color"`
	MaintenanceMode    string `json:"maintenance_mode"`
	TMDBAPIKey         string `json:"tmdb_api_key"`
	MinVersion         string `json:"min_version"`
	AnnouncementText   string `json:"announcement_text"`
	AnnouncementActive string `json:"announcement_active"`
}
