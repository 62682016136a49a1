package service

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
)

// TMDB 图片基础路径和本面板使用的尺寸
const (
	tmdbImageHost    = "https://image.tmdb.org/t/p/"
	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "original"
)

// TMDBService 元数据补全服务。走上游的 /api/tmdb/fetch 中转接口，
// 同一 ID 的并发请求用 singleflight 合并，结果进 LRU 缓存。
type TMDBService struct {
	client *Client
	cache  *utils.TTLCache[*model.TMDBMetadata]
	group  singleflight.Group
}

// NewTMDBService 创建元数据服务
func NewTMDBService(client *Client) *TMDBService {
	return &TMDBService{
		client: client,
		cache:  utils.NewTTLCache[*model.TMDBMetadata](500, time.Hour),
	}
}

// FetchMetadata 按 TMDB ID 抓取元数据并映射到内容条目的字段形状。
// mediaType 是 "movie" 或 "series"。返回的图片地址已归一化。
func (s *TMDBService) FetchMetadata(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
	key := mediaType + ":" + tmdbID
	if meta, ok := s.cache.Get(key); ok {
		return meta, nil
	}

	// 并发抓取同一 ID 时只发一次请求
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.fetchInternal(tmdbID, mediaType)
	})
	if err != nil {
		return nil, err
	}

	meta := val.(*model.TMDBMetadata)
	s.cache.Set(key, meta)
	return meta, nil
}

func (s *TMDBService) fetchInternal(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
	path := fmt.Sprintf("/api/tmdb/fetch?tmdb_id=%s&type=%s",
		url.QueryEscape(tmdbID), url.QueryEscape(mediaType))

	var meta model.TMDBMetadata
	if err := s.client.GetJSON(path, &meta); err != nil {
		log.Printf("[TMDB] 抓取失败 (ID: %s, 类型: %s): %v", tmdbID, mediaType, err)
		return nil, err
	}

	// 上游可能返回裸路径，也可能返回已拼好的完整地址，统一归一化
	meta.PosterURL = NormalizeImageURL(meta.PosterURL, tmdbPosterSize)
	meta.BackdropURL = NormalizeImageURL(meta.BackdropURL, tmdbBackdropSize)
	return &meta, nil
}

// NormalizeImageURL 把图片地址归一化为 https://image.tmdb.org/t/p/<尺寸>/<文件> 形式。
// 输入无论是裸路径（/abc.jpg）还是已带任意尺寸前缀的完整地址，
// 都只会得到一层指定尺寸的前缀，重复调用结果不变。
func NormalizeImageURL(raw, size string) string {
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, tmdbImageHost) {
		rest := strings.TrimPrefix(raw, tmdbImageHost)
		// 丢弃已有的尺寸段，只留文件路径
		if idx := strings.Index(rest, "/"); idx >= 0 {
			raw = rest[idx:]
		} else {
			raw = "/" + rest
		}
	}

	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return tmdbImageHost + size + raw
}
