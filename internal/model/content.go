package model

import (
	"encoding/json"
	"fmt"
)

// 内容类型
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// ContentItem 目录条目。公共字段 + 按类型二选一的变体：
// 电影持有播放地址，剧集持有季列表，二者不会同时出现。
type ContentItem struct {
	ID           int
	Title        string
	Description  string
	PosterURL    string
	BackdropURL  string
	CategoryID   int
	CategoryName string
	Rating       float64
	ReleaseDate  string

	Movie  *MovieInfo
	Series *SeriesInfo
}

// MovieInfo 电影变体
type MovieInfo struct {
	VideoURL string `json:"video_url"`
}

// SeriesInfo 剧集变体。Seasons 仅在详情接口返回时填充。
type SeriesInfo struct {
	Seasons []Season `json:"seasons"`
}

// Season 季，归属于一个剧集条目
type Season struct {
	ID           int       `json:"id"`
	SeriesID     int       `json:"series_id"`
	SeasonNumber int       `json:"season_number"`
	Title        string    `json:"title"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// Episode 集，归属于一个季
type Episode struct {
	ID            int    `json:"id"`
	SeasonID      int    `json:"season_id"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	Duration      int    `json:"duration"`
}

// Type 返回线上格式中的类型标签
func (c *ContentItem) Type() string {
	if c.Series != nil {
		return TypeSeries
	}
	return TypeMovie
}

// contentWire 上游 REST 接口的扁平线上格式
type contentWire struct {
	ID           int      `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PosterURL    string   `json:"poster_url"`
	BackdropURL  string   `json:"backdrop_url"`
	VideoURL     string   `json:"video_url,omitempty"`
	CategoryID   int      `json:"category_id"`
	CategoryName string   `json:"category_name,omitempty"`
	Rating       float64  `json:"rating"`
	ReleaseDate  string   `json:"release_date"`
	Type         string   `json:"type"`
	Seasons      []Season `json:"seasons,omitempty"`
}

// MarshalJSON 序列化为扁平格式。剧集条目不会带出 video_url。
func (c ContentItem) MarshalJSON() ([]byte, error) {
	w := contentWire{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		PosterURL:    c.PosterURL,
		BackdropURL:  c.BackdropURL,
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		Rating:       c.Rating,
		ReleaseDate:  c.ReleaseDate,
		Type:         c.Type(),
	}
	switch {
	case c.Movie != nil:
		w.VideoURL = c.Movie.VideoURL
	case c.Series != nil:
		w.Seasons = c.Series.Seasons
	}
	return json.Marshal(w)
}

// UnmarshalJSON 从扁平格式还原变体结构
func (c *ContentItem) UnmarshalJSON(data []byte) error {
	var w contentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = ContentItem{
		ID:           w.ID,
		Title:        w.Title,
		Description:  w.Description,
		PosterURL:    w.PosterURL,
		BackdropURL:  w.BackdropURL,
		CategoryID:   w.CategoryID,
		CategoryName: w.CategoryName,
		Rating:       w.Rating,
		ReleaseDate:  w.ReleaseDate,
	}

	switch w.Type {
	case TypeSeries:
		c.Series = &SeriesInfo{Seasons: w.Seasons}
	case TypeMovie, "":
		// 老数据可能缺失 type 字段，按电影处理
		c.Movie = &MovieInfo{VideoURL: w.VideoURL}
	default:
		return fmt.Errorf("未知的内容类型: %s", w.Type)
	}
	return nil
}
