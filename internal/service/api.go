package service

// API 聚合目录与元数据服务，作为编辑工作流依赖的远端操作集合注入
type API struct {
	*CatalogService
	*TMDBService
}

// NewAPI 组合两个服务
func NewAPI(catalog *CatalogService, tmdb *TMDBService) *API {
	return &API{
		CatalogService: catalog,
		TMDBService:    tmdb,
	}
}
