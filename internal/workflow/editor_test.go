package workflow

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ErkanYT/movie-admin-panel/internal/model"
)

// fakeCatalog 按需覆盖各远端操作的测试桩
type fakeCatalog struct {
	listFn          func() ([]model.ContentItem, error)
	detailFn        func(id int) (*model.ContentItem, error)
	createFn        func(item *model.ContentItem) (*model.ContentItem, error)
	deleteFn        func(id int) error
	createSeasonFn  func(seriesID, seasonNumber int, title string) (*model.Season, error)
	createEpisodeFn func(seasonID int, ep *model.Episode) (*model.Episode, error)
	fetchFn         func(tmdbID, mediaType string) (*model.TMDBMetadata, error)
}

func (f *fakeCatalog) ListContent() ([]model.ContentItem, error) {
	if f.listFn != nil {
		return f.listFn()
	}
	return nil, nil
}

func (f *fakeCatalog) ContentDetail(id int) (*model.ContentItem, error) {
	if f.detailFn != nil {
		return f.detailFn(id)
	}
	return &model.ContentItem{ID: id, Series: &model.SeriesInfo{}}, nil
}

func (f *fakeCatalog) CreateContent(item *model.ContentItem) (*model.ContentItem, error) {
	if f.createFn != nil {
		return f.createFn(item)
	}
	return item, nil
}

func (f *fakeCatalog) DeleteContent(id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func (f *fakeCatalog) CreateSeason(seriesID, seasonNumber int, title string) (*model.Season, error) {
	if f.createSeasonFn != nil {
		return f.createSeasonFn(seriesID, seasonNumber, title)
	}
	return &model.Season{SeriesID: seriesID, SeasonNumber: seasonNumber, Title: title}, nil
}

func (f *fakeCatalog) CreateEpisode(seasonID int, ep *model.Episode) (*model.Episode, error) {
	if f.createEpisodeFn != nil {
		return f.createEpisodeFn(seasonID, ep)
	}
	return ep, nil
}

func (f *fakeCatalog) FetchMetadata(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
	if f.fetchFn != nil {
		return f.fetchFn(tmdbID, mediaType)
	}
	return nil, errors.New("未配置")
}

func sampleItems() []model.ContentItem {
	return []model.ContentItem{
		{ID: 1, Title: "Inception", Movie: &model.MovieInfo{VideoURL: "u1"}},
		{ID: 2, Title: "Dark", Series: &model.SeriesInfo{}},
		{ID: 3, Title: "Interstellar", Movie: &model.MovieInfo{VideoURL: "u3"}},
	}
}

func TestEditorItemsSearch(t *testing.T) {
	api := &fakeCatalog{listFn: func() ([]model.ContentItem, error) {
		return sampleItems(), nil
	}}
	e := NewEditor(api)
	if err := e.Reload(); err != nil {
		t.Fatal(err)
	}

	if got := e.Items(""); len(got) != 3 {
		t.Fatalf("全量列表应为 3 条, 得到 %d", len(got))
	}
	// 不区分大小写的标题包含过滤
	got := e.Items("inter")
	if len(got) != 1 || got[0].Title != "Interstellar" {
		t.Fatalf("过滤结果不对: %+v", got)
	}
	if got := e.Items("不存在"); len(got) != 0 {
		t.Fatalf("无匹配时应为空, 得到 %+v", got)
	}
}

// 删除成功：条目立即从本地列表消失，远端只收到一次调用
func TestEditorDeleteOptimistic(t *testing.T) {
	var deleted []int
	api := &fakeCatalog{
		listFn:   func() ([]model.ContentItem, error) { return sampleItems(), nil },
		deleteFn: func(id int) error { deleted = append(deleted, id); return nil },
	}
	e := NewEditor(api)
	if err := e.Reload(); err != nil {
		t.Fatal(err)
	}

	if err := e.Delete(2); err != nil {
		t.Fatal(err)
	}

	items := e.Items("")
	if len(items) != 2 {
		t.Fatalf("删除后应剩 2 条, 得到 %d", len(items))
	}
	for _, item := range items {
		if item.ID == 2 {
			t.Fatal("ID 2 应已被移除")
		}
	}
	if !reflect.DeepEqual(deleted, []int{2}) {
		t.Fatalf("远端删除调用不对: %v", deleted)
	}
}

// 删除失败：列表按快照恢复，顺序和成员与删除前完全一致
func TestEditorDeleteRollback(t *testing.T) {
	api := &fakeCatalog{
		listFn:   func() ([]model.ContentItem, error) { return sampleItems(), nil },
		deleteFn: func(id int) error { return errors.New("上游 500") },
	}
	e := NewEditor(api)
	if err := e.Reload(); err != nil {
		t.Fatal(err)
	}
	before := e.Items("")

	if err := e.Delete(2); err == nil {
		t.Fatal("远端失败应返回错误")
	}

	after := e.Items("")
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("回滚后列表应与删除前一致:\n前: %+v\n后: %+v", before, after)
	}
}

// 提交成功：远端收到按草稿组装的条目，然后草稿重置、模式回手动、列表重拉
func TestEditorSubmit(t *testing.T) {
	var created *model.ContentItem
	var listCalls int
	api := &fakeCatalog{
		listFn: func() ([]model.ContentItem, error) {
			listCalls++
			return sampleItems(), nil
		},
		createFn: func(item *model.ContentItem) (*model.ContentItem, error) {
			created = item
			return item, nil
		},
	}
	e := NewEditor(api)
	e.SetMode(ModeAuto)
	e.SetDraft(ContentDraft{
		Title:       "Tenet",
		Description: "时间逆转",
		VideoURL:    "https://v.example.com/tenet.mp4",
		CategoryID:  2,
		Rating:      7.3,
		ReleaseDate: "2020-08-26",
		Type:        model.TypeMovie,
	})

	if err := e.Submit(); err != nil {
		t.Fatal(err)
	}

	if created == nil || created.Title != "Tenet" {
		t.Fatalf("远端收到的条目不对: %+v", created)
	}
	if created.Movie == nil || created.Movie.VideoURL != "https://v.example.com/tenet.mp4" {
		t.Fatalf("电影变体不对: %+v", created.Movie)
	}
	if created.Series != nil {
		t.Fatal("电影条目不应带剧集变体")
	}

	// 提交后状态复位
	if e.Mode() != ModeManual {
		t.Fatalf("模式应回到手动, 得到 %s", e.Mode())
	}
	if e.TMDBID() != "" {
		t.Fatalf("TMDB ID 应清空, 得到 %s", e.TMDBID())
	}
	draft := e.Draft()
	if draft.Title != "" || draft.CategoryID != 1 || draft.Rating != 7.0 || draft.Type != model.TypeMovie {
		t.Fatalf("草稿应恢复默认值: %+v", draft)
	}
	if listCalls != 1 {
		t.Fatalf("提交后应重拉一次列表, 实际 %d 次", listCalls)
	}
}

// 剧集草稿：提交的条目不会携带播放地址
func TestEditorSubmitSeries(t *testing.T) {
	var created *model.ContentItem
	api := &fakeCatalog{
		createFn: func(item *model.ContentItem) (*model.ContentItem, error) {
			created = item
			return item, nil
		},
	}
	e := NewEditor(api)
	e.SetDraft(ContentDraft{
		Title:      "Dark",
		VideoURL:   "https://v.example.com/should-be-dropped.mp4",
		CategoryID: 1,
		Rating:     8.7,
		Type:       model.TypeSeries,
	})

	if err := e.Submit(); err != nil {
		t.Fatal(err)
	}
	if created.Series == nil || created.Movie != nil {
		t.Fatalf("剧集变体不对: %+v", created)
	}
}

// 校验失败：不碰远端，草稿原样保留
func TestEditorSubmitValidation(t *testing.T) {
	var createCalls int
	api := &fakeCatalog{
		createFn: func(item *model.ContentItem) (*model.ContentItem, error) {
			createCalls++
			return item, nil
		},
	}
	e := NewEditor(api)
	draft := ContentDraft{Title: "", CategoryID: 1, Rating: 7.0, Type: model.TypeMovie}
	e.SetDraft(draft)

	if err := e.Submit(); err == nil {
		t.Fatal("缺少标题应校验失败")
	}
	if createCalls != 0 {
		t.Fatal("校验失败不应请求远端")
	}
	if got := e.Draft(); got != draft {
		t.Fatalf("失败后草稿应原样保留: %+v", got)
	}
}

// 远端创建失败：草稿和模式都不动，等操作员重试
func TestEditorSubmitRemoteFailure(t *testing.T) {
	api := &fakeCatalog{
		createFn: func(item *model.ContentItem) (*model.ContentItem, error) {
			return nil, errors.New("上游 500")
		},
	}
	e := NewEditor(api)
	e.SetMode(ModeAuto)
	draft := ContentDraft{Title: "Tenet", CategoryID: 1, Rating: 7.0, Type: model.TypeMovie}
	e.SetDraft(draft)

	if err := e.Submit(); err == nil {
		t.Fatal("远端失败应返回错误")
	}
	if got := e.Draft(); got != draft {
		t.Fatalf("失败后草稿应原样保留: %+v", got)
	}
	if e.Mode() != ModeAuto {
		t.Fatalf("失败后模式不应改变, 得到 %s", e.Mode())
	}
}

// 抓取成功：元数据合并进草稿并切回手动模式供复核
func TestEditorFetchMetadata(t *testing.T) {
	api := &fakeCatalog{
		fetchFn: func(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
			if tmdbID != "603" || mediaType != model.TypeMovie {
				t.Errorf("抓取参数不对: %s / %s", tmdbID, mediaType)
			}
			return &model.TMDBMetadata{
				Title:       "The Matrix",
				Description: "黑客帝国",
				PosterURL:   "https://image.tmdb.org/t/p/w500/matrix.jpg",
				Rating:      8.2,
				ReleaseDate: "1999-03-31",
				CategoryID:  5,
			}, nil
		},
	}
	e := NewEditor(api)
	e.SetMode(ModeAuto)

	if err := e.FetchMetadata("603"); err != nil {
		t.Fatal(err)
	}

	draft := e.Draft()
	if draft.Title != "The Matrix" || draft.Rating != 8.2 || draft.CategoryID != 5 {
		t.Fatalf("元数据未合并进草稿: %+v", draft)
	}
	if draft.ReleaseDate != "1999-03-31" {
		t.Fatalf("上映日期不对: %s", draft.ReleaseDate)
	}
	if e.Mode() != ModeManual {
		t.Fatalf("抓取成功后应切回手动模式, 得到 %s", e.Mode())
	}
	if e.TMDBID() != "603" {
		t.Fatalf("TMDB ID 未记录: %s", e.TMDBID())
	}
}

// 抓取结果缺上映日期时回填当天；分类 0 不覆盖草稿原值
func TestEditorFetchMetadataDefaults(t *testing.T) {
	api := &fakeCatalog{
		fetchFn: func(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
			return &model.TMDBMetadata{Title: "Unknown", Rating: 6.0}, nil
		},
	}
	e := NewEditor(api)

	if err := e.FetchMetadata("1"); err != nil {
		t.Fatal(err)
	}
	draft := e.Draft()
	if draft.ReleaseDate != time.Now().Format("2006-01-02") {
		t.Fatalf("缺失上映日期应回填当天, 得到 %s", draft.ReleaseDate)
	}
	if draft.CategoryID != 1 {
		t.Fatalf("分类 0 不应覆盖默认值, 得到 %d", draft.CategoryID)
	}
}

// 抓取失败：草稿一个字段都不动
func TestEditorFetchMetadataFailure(t *testing.T) {
	api := &fakeCatalog{
		fetchFn: func(tmdbID, mediaType string) (*model.TMDBMetadata, error) {
			return nil, errors.New("TMDB ID 不存在")
		},
	}
	e := NewEditor(api)
	before := e.Draft()

	if err := e.FetchMetadata("0"); err == nil {
		t.Fatal("抓取失败应返回错误")
	}
	if got := e.Draft(); got != before {
		t.Fatalf("失败后草稿应原样保留:\n前: %+v\n后: %+v", before, got)
	}
	if e.TMDBID() != "" {
		t.Fatal("失败后不应记录 TMDB ID")
	}
}

func TestEditorSetModeRejectsUnknown(t *testing.T) {
	e := NewEditor(&fakeCatalog{})
	e.SetMode("什么都不是")
	if e.Mode() != ModeManual {
		t.Fatalf("未知模式不应生效, 得到 %s", e.Mode())
	}
}
