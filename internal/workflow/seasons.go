package workflow

import (
	"fmt"
	"sync"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// 上游暂无单集时长录入，按常见剧集时长填默认值
const defaultEpisodeDuration = 45

// EpisodeForm 待添加的集表单。编号在内存里自增，以最近一次录入为准，
// 不向服务器求证最大值——并发或失败重提可能产生空洞或重号，属已知取舍。
type EpisodeForm struct {
	Number   int
	Title    string
	VideoURL string
}

// SeasonManager 剧集的季/集管理子工作流。打开时拉取完整详情树，
// 每次写操作成功后整树重拉（其他表单的未保存内容随之丢弃）。
type SeasonManager struct {
	mu          sync.Mutex
	api         CatalogAPI
	seriesID    int
	seriesTitle string
	seasons     []model.Season
	expanded    int // 展开的季 ID，0 表示全部收起
	next        EpisodeForm
}

// NewSeasonManager 创建季管理工作流
func NewSeasonManager(api CatalogAPI, seriesID int, seriesTitle string) *SeasonManager {
	return &SeasonManager{
		api:         api,
		seriesID:    seriesID,
		seriesTitle: seriesTitle,
		next:        EpisodeForm{Number: 1},
	}
}

// Reload 拉取剧集详情并替换本地的季/集树
func (m *SeasonManager) Reload() error {
	detail, err := m.api.ContentDetail(m.seriesID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seriesTitle = detail.Title
	if detail.Series != nil {
		m.seasons = detail.Series.Seasons
	} else {
		m.seasons = nil
	}
	return nil
}

// SeriesID 所管理剧集的 ID
func (m *SeasonManager) SeriesID() int {
	return m.seriesID
}

// SeriesTitle 所管理剧集的标题
func (m *SeasonManager) SeriesTitle() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seriesTitle
}

// Seasons 当前的季列表
func (m *SeasonManager) Seasons() []model.Season {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Season(nil), m.seasons...)
}

// Expanded 当前展开的季 ID
func (m *SeasonManager) Expanded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expanded
}

// Toggle 展开/收起一个季。同一时间最多展开一个：
// 展开新的季会自动收起之前展开的那个。
func (m *SeasonManager) Toggle(seasonID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expanded == seasonID {
		m.expanded = 0
	} else {
		m.expanded = seasonID
	}
}

// AddSeason 追加一季。季号取当前季数 +1，标题固定 "Season N"；
// 不向服务器求证真实最大季号，带外删除后可能出现重号，属已知取舍。
func (m *SeasonManager) AddSeason() error {
	m.mu.Lock()
	next := len(m.seasons) + 1
	m.mu.Unlock()

	_, err := m.api.CreateSeason(m.seriesID, next, fmt.Sprintf("Season %d", next))
	if err != nil {
		return err
	}
	return m.Reload()
}

// NextEpisode 当前待添加的集表单
func (m *SeasonManager) NextEpisode() EpisodeForm {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}

// SetNextEpisode 回填集表单（操作员可手动改编号）
func (m *SeasonManager) SetNextEpisode(form EpisodeForm) {
	m.mu.Lock()
	m.next = form
	m.mu.Unlock()
}

// AddEpisode 向指定的季提交当前集表单。成功后集号 +1、
// 标题和地址清空，然后整树重拉详情。
func (m *SeasonManager) AddEpisode(seasonID int) error {
	m.mu.Lock()
	form := m.next
	m.mu.Unlock()

	ep := &model.Episode{
		EpisodeNumber: form.Number,
		Title:         form.Title,
		VideoURL:      form.VideoURL,
		Duration:      defaultEpisodeDuration,
	}
	if _, err := m.api.CreateEpisode(seasonID, ep); err != nil {
		return err
	}

	m.mu.Lock()
	m.next = EpisodeForm{Number: form.Number + 1}
	m.mu.Unlock()

	return m.Reload()
}
