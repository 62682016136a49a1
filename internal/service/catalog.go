package service

import (
	"fmt"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// CatalogService 内容目录客户端：电影/剧集条目与季、集的增删查。
// 每个方法对应上游一个接口，失败直接把错误抛给调用方展示。
type CatalogService struct {
	client *Client
}

// NewCatalogService 创建目录服务
func NewCatalogService(client *Client) *CatalogService {
	return &CatalogService{client: client}
}

// ListContent 拉取全部内容列表
func (s *CatalogService) ListContent() ([]model.ContentItem, error) {
	var items []model.ContentItem
	if err := s.client.GetJSON("/api/content", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ContentDetail 拉取单条内容详情，剧集会带上完整的季/集树
func (s *CatalogService) ContentDetail(id int) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := s.client.GetJSON(fmt.Sprintf("/api/content/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateContent 新建内容条目
func (s *CatalogService) CreateContent(item *model.ContentItem) (*model.ContentItem, error) {
	var created model.ContentItem
	if err := s.client.PostJSON("/api/content", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteContent 删除内容条目，没有撤销
func (s *CatalogService) DeleteContent(id int) error {
	return s.client.Delete(fmt.Sprintf("/api/content/%d", id))
}

// CreateSeason 给剧集添加一季
func (s *CatalogService) CreateSeason(seriesID, seasonNumber int, title string) (*model.Season, error) {
	payload := map[string]interface{}{
		"season_number": seasonNumber,
		"title":         title,
	}

	var season model.Season
	if err := s.client.PostJSON(fmt.Sprintf("/api/content/%d/seasons", seriesID), payload, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// CreateEpisode 给季添加一集
func (s *CatalogService) CreateEpisode(seasonID int, ep *model.Episode) (*model.Episode, error) {
	payload := map[string]interface{}{
		"episode_number": ep.EpisodeNumber,
		"title":          ep.Title,
		"video_url":      ep.VideoURL,
		"duration":       ep.Duration,
	}

	var created model.Episode
	if err := s.client.PostJSON(fmt.Sprintf("/api/content/seasons/%d/episodes", seasonID), payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
