package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// 电影条目：线上格式带 video_url，不带 seasons
func TestContentItemMarshalMovie(t *testing.T) {
	item := ContentItem{
		ID:         7,
		Title:      "Inception",
		CategoryID: 1,
		Rating:     8.8,
		Movie:      &MovieInfo{VideoURL: "https://cdn.example.com/inception.mp4"},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"movie"`) {
		t.Errorf("缺少类型标签: %s", s)
	}
	if !strings.Contains(s, `"video_url":"https://cdn.example.com/inception.mp4"`) {
		t.Errorf("缺少播放地址: %s", s)
	}
	if strings.Contains(s, "seasons") {
		t.Errorf("电影不应带季列表: %s", s)
	}
}

// 剧集条目：绝不会带出 video_url
func TestContentItemMarshalSeriesOmitsVideoURL(t *testing.T) {
	item := ContentItem{
		ID:     8,
		Title:  "Dark",
		Series: &SeriesInfo{Seasons: []Season{{ID: 1, SeasonNumber: 1, Title: "Season 1"}}},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"series"`) {
		t.Errorf("缺少类型标签: %s", s)
	}
	if strings.Contains(s, "video_url") {
		t.Errorf("剧集不应带 video_url: %s", s)
	}
	if !strings.Contains(s, `"season_number":1`) {
		t.Errorf("缺少季列表: %s", s)
	}
}

func TestContentItemUnmarshalMovie(t *testing.T) {
	raw := `{"id":7,"title":"Inception","type":"movie","video_url":"https://v.example.com/1.mp4","category_id":2,"rating":8.8}`

	var item ContentItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatal(err)
	}
	if item.Type() != TypeMovie {
		t.Fatalf("类型应为电影, 得到 %s", item.Type())
	}
	if item.Movie == nil || item.Movie.VideoURL != "https://v.example.com/1.mp4" {
		t.Fatalf("电影变体不对: %+v", item.Movie)
	}
	if item.Series != nil {
		t.Fatal("电影不应有剧集变体")
	}
}

// 老数据可能缺失 type 字段，按电影处理
func TestContentItemUnmarshalMissingType(t *testing.T) {
	var item ContentItem
	if err := json.Unmarshal([]byte(`{"id":1,"title":"Old"}`), &item); err != nil {
		t.Fatal(err)
	}
	if item.Type() != TypeMovie {
		t.Fatalf("缺失 type 应按电影处理, 得到 %s", item.Type())
	}
}

// 详情接口的剧集会带嵌套的季/集树
func TestContentItemUnmarshalSeriesDetail(t *testing.T) {
	raw := `{
		"id": 8, "title": "Dark", "type": "series",
		"seasons": [
			{"id": 11, "series_id": 8, "season_number": 1, "title": "Season 1",
			 "episodes": [{"id": 101, "season_id": 11, "episode_number": 1, "title": "Secrets", "video_url": "https://v.example.com/s1e1.mp4", "duration": 51}]}
		]
	}`

	var item ContentItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatal(err)
	}
	if item.Series == nil || len(item.Series.Seasons) != 1 {
		t.Fatalf("季列表不对: %+v", item.Series)
	}
	season := item.Series.Seasons[0]
	if len(season.Episodes) != 1 || season.Episodes[0].EpisodeNumber != 1 {
		t.Fatalf("集列表不对: %+v", season.Episodes)
	}
	if item.Movie != nil {
		t.Fatal("剧集不应有电影变体")
	}
}

func TestContentItemUnmarshalUnknownType(t *testing.T) {
	var item ContentItem
	err := json.Unmarshal([]byte(`{"id":1,"title":"X","type":"podcast"}`), &item)
	if err == nil {
		t.Fatal("未知类型应报错")
	}
}

// 序列化再反序列化后变体结构保持一致
func TestContentItemRoundTrip(t *testing.T) {
	orig := ContentItem{
		ID:          9,
		Title:       "Interstellar",
		Description: "太空题材",
		CategoryID:  3,
		Rating:      8.6,
		ReleaseDate: "2014-11-07",
		Movie:       &MovieInfo{VideoURL: "https://v.example.com/9.mp4"},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var got ContentItem
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != orig.Title || got.Rating != orig.Rating || got.ReleaseDate != orig.ReleaseDate {
		t.Fatalf("公共字段丢失: %+v", got)
	}
	if got.Movie == nil || got.Movie.VideoURL != orig.Movie.VideoURL {
		t.Fatalf("电影变体丢失: %+v", got.Movie)
	}
}
