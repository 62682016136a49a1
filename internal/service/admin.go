package service

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
	"github.com/ErkanYT/movie-admin-panel/internal/utils"
)

const settingsCacheKey = "app_settings"

// AdminService 求片、防盗链白名单、全局设置的上游客户端
type AdminService struct {
	client  *Client
	scraper *utils.HTTPClient
}

// NewAdminService 创建管理服务
func NewAdminService(client *Client) *AdminService {
	return &AdminService{
		client:  client,
		scraper: utils.NewHTTPClient(10 * time.Second),
	}
}

// ==================== 求片 ====================

// ListRequests 拉取求片列表
func (s *AdminService) ListRequests() ([]model.ContentRequest, error) {
	var requests []model.ContentRequest
	if err := s.client.GetJSON("/api/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequestStatus 更新求片状态（completed / rejected）
func (s *AdminService) UpdateRequestStatus(id int, status string) error {
	payload := map[string]string{"status": status}
	return s.client.PutJSON(fmt.Sprintf("/api/requests/%d/status", id), payload, nil)
}

// ==================== 防盗链白名单 ====================

// ListReferers 拉取白名单
func (s *AdminService) ListReferers() ([]model.RefererEntry, error) {
	var referers []model.RefererEntry
	if err := s.client.GetJSON("/referers", &referers); err != nil {
		return nil, err
	}
	return referers, nil
}

// CreateReferer 新增白名单条目。站点名留空时尝试抓取目标页面的
// <title> 自动补全，抓不到就原样提交。
func (s *AdminService) CreateReferer(entry *model.RefererEntry) (*model.RefererEntry, error) {
	if entry.SiteName == "" {
		if title := s.fetchSiteTitle(entry.URL); title != "" {
			entry.SiteName = title
		}
	}

	var created model.RefererEntry
	if err := s.client.PostJSON("/referers", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteReferer 删除白名单条目
func (s *AdminService) DeleteReferer(id int) error {
	return s.client.Delete(fmt.Sprintf("/referers/%d", id))
}

// fetchSiteTitle 抓取站点首页标题，失败只记日志不报错
func (s *AdminService) fetchSiteTitle(siteURL string) string {
	body, err := s.scraper.GetBody(siteURL)
	if err != nil {
		log.Printf("[Referer] 抓取站点标题失败 (%s): %v", siteURL, err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		log.Printf("[Referer] 解析站点页面失败 (%s): %v", siteURL, err)
		return ""
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

// ==================== 全局设置 ====================

// GetSettings 拉取全局设置，带一分钟缓存
func (s *AdminService) GetSettings() (*model.AppSettings, error) {
	if cached, ok := utils.CacheGet(settingsCacheKey); ok {
		return cached.(*model.AppSettings), nil
	}

	var settings model.AppSettings
	if err := s.client.GetJSON("/api/settings", &settings); err != nil {
		return nil, err
	}

	utils.CacheSet(settingsCacheKey, &settings, time.Minute)
	return &settings, nil
}

// UpdateSettings 保存全局设置。该接口要求 Bearer 令牌，
// 令牌由调用方显式传入而不是从环境里摸。
func (s *AdminService) UpdateSettings(settings *model.AppSettings, token string) error {
	if err := s.client.PostJSONAuth("/api/settings/update", settings, nil, token); err != nil {
		return err
	}

	// 保存成功后丢弃缓存快照，下次读取拿新值
	utils.CacheDelete(settingsCacheKey)
	return nil
}
