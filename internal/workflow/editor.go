package workflow

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// 编辑模式：手动填表 / TMDB 自动补全
const (
	ModeManual = "manual"
	ModeAuto   = "auto"
)

var validate = validator.New()

// CatalogAPI 编辑工作流依赖的全部远端操作，便于按会话注入和测试替换
type CatalogAPI interface {
	ListContent() ([]model.ContentItem, error)
	ContentDetail(id int) (*model.ContentItem, error)
	CreateContent(item *model.ContentItem) (*model.ContentItem, error)
	DeleteContent(id int) error
	CreateSeason(seriesID, seasonNumber int, title string) (*model.Season, error)
	CreateEpisode(seasonID int, ep *model.Episode) (*model.Episode, error)
	FetchMetadata(tmdbID, mediaType string) (*model.TMDBMetadata, error)
}

// ContentDraft 新建内容的表单草稿。VideoURL 只在电影类型下使用，
// 提交时按类型组装成变体结构，剧集不会带出播放地址。
type ContentDraft struct {
	Title       string `validate:"required"`
	Description string
	PosterURL   string
	BackdropURL string
	VideoURL    string
	CategoryID  int     `validate:"gte=1"`
	Rating      float64 `validate:"gte=0,lte=10"`
	ReleaseDate string
	Type        string `validate:"oneof=movie series"`
}

// DefaultDraft 草稿默认值：分类 1、评分 7.0、上映日期取当天、类型电影
func DefaultDraft() ContentDraft {
	return ContentDraft{
		CategoryID:  1,
		Rating:      7.0,
		ReleaseDate: time.Now().Format("2006-01-02"),
		Type:        model.TypeMovie,
	}
}

// toItem 按草稿类型组装内容条目
func (d ContentDraft) toItem() *model.ContentItem {
	item := &model.ContentItem{
		Title:       d.Title,
		Description: d.Description,
		PosterURL:   d.PosterURL,
		BackdropURL: d.BackdropURL,
		CategoryID:  d.CategoryID,
		Rating:      d.Rating,
		ReleaseDate: d.ReleaseDate,
	}
	if d.Type == model.TypeSeries {
		item.Series = &model.SeriesInfo{}
	} else {
		item.Movie = &model.MovieInfo{VideoURL: d.VideoURL}
	}
	return item
}

// Editor 内容编辑工作流：持有内容列表、当前草稿和编辑模式。
// 一个操作员会话对应一个实例，方法内部自行加锁。
type Editor struct {
	mu     sync.Mutex
	api    CatalogAPI
	mode   string
	tmdbID string
	draft  ContentDraft
	items  []model.ContentItem
}

// NewEditor 创建编辑工作流
func NewEditor(api CatalogAPI) *Editor {
	return &Editor{
		api:   api,
		mode:  ModeManual,
		draft: DefaultDraft(),
	}
}

// Reload 整体重拉内容列表（不做增量合并）
func (e *Editor) Reload() error {
	items, err := e.api.ListContent()
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()
	return nil
}

// Items 返回内容列表，search 非空时按标题做不区分大小写的包含过滤
func (e *Editor) Items(search string) []model.ContentItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	if search == "" {
		return append([]model.ContentItem(nil), e.items...)
	}

	keyword := strings.ToLower(search)
	var filtered []model.ContentItem
	for _, item := range e.items {
		if strings.Contains(strings.ToLower(item.Title), keyword) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Mode 当前编辑模式
func (e *Editor) Mode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetMode 切换编辑模式
func (e *Editor) SetMode(mode string) {
	if mode != ModeManual && mode != ModeAuto {
		return
	}
	e.mu.Lock()
	e.mode = mode
	e.mu.Unlock()
}

// Draft 当前草稿
func (e *Editor) Draft() ContentDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetDraft 整体覆盖草稿（表单回填）
func (e *Editor) SetDraft(draft ContentDraft) {
	e.mu.Lock()
	e.draft = draft
	e.mu.Unlock()
}

// TMDBID 当前填写的 TMDB ID
func (e *Editor) TMDBID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tmdbID
}

// FetchMetadata 按 TMDB ID 抓取元数据并合并进草稿，成功后切回手动
// 模式供操作员复核。失败时草稿保持原样，错误交给调用方展示。
func (e *Editor) FetchMetadata(tmdbID string) error {
	e.mu.Lock()
	mediaType := e.draft.Type
	e.mu.Unlock()

	meta, err := e.api.FetchMetadata(tmdbID, mediaType)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.tmdbID = tmdbID
	e.draft.Title = meta.Title
	e.draft.Description = meta.Description
	e.draft.PosterURL = meta.PosterURL
	e.draft.BackdropURL = meta.BackdropURL
	e.draft.Rating = meta.Rating
	if meta.ReleaseDate != "" {
		e.draft.ReleaseDate = meta.ReleaseDate
	} else {
		e.draft.ReleaseDate = time.Now().Format("2006-01-02")
	}
	if meta.CategoryID > 0 {
		e.draft.CategoryID = meta.CategoryID
	}
	e.mode = ModeManual
	return nil
}

// Submit 校验并提交草稿。成功后草稿恢复默认值、模式回到手动，
// 并整体重拉内容列表；失败时所有状态原样保留，等操作员重试。
func (e *Editor) Submit() error {
	e.mu.Lock()
	draft := e.draft
	e.mu.Unlock()

	if err := validate.Struct(draft); err != nil {
		return err
	}

	if _, err := e.api.CreateContent(draft.toItem()); err != nil {
		return err
	}

	e.mu.Lock()
	e.draft = DefaultDraft()
	e.mode = ModeManual
	e.tmdbID = ""
	e.mu.Unlock()

	if err := e.Reload(); err != nil {
		// 创建已经成功，列表刷新失败只记日志
		log.Printf("[Editor] 提交后刷新列表失败: %v", err)
	}
	return nil
}

// Delete 乐观删除：先从本地列表移除，远端失败时按快照恢复
// 原有顺序和成员。删除前的二次确认由界面层负责。
func (e *Editor) Delete(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Optimistic(
		func() []model.ContentItem {
			return append([]model.ContentItem(nil), e.items...)
		},
		func() {
			filtered := make([]model.ContentItem, 0, len(e.items))
			for _, item := range e.items {
				if item.ID != id {
					filtered = append(filtered, item)
				}
			}
			e.items = filtered
		},
		func() error {
			return e.api.DeleteContent(id)
		},
		func(snapshot []model.ContentItem) {
			e.items = snapshot
		},
	)
}
