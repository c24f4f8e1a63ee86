package model

// NextRestaurantRequest 次のレストラン選択リクエスト
type NextRestaurantRequest struct {
	CurrentID  string   `json:"current_id" binding:"required"`
	VisitedIDs []string `json:"visited_ids"`
	Latitude   *float64 `json:"lat"`
	Longitude  *float64 `json:"lng"`
	QueryText  string   `json:"q"`
	// MaxDistanceMeters 未指定の場合はデフォルト半径
	MaxDistanceMeters *float64 `json:"max_distance"`
}

// NextRestaurantResponse 次のレストラン選択レスポンス
type NextRestaurantResponse struct {
	Restaurant *RestaurantWithDistance `json:"restaurant"`
	VisitedIDs []string                `json:"visited_ids"`
	CycleReset bool                    `json:"cycle_reset"`
}

// SearchResponse 検索レスポンス
type SearchResponse struct {
	Restaurants []RestaurantWithDistance `json:"restaurants"`
	Count       int                      `json:"count"`
	// LocationUnavailable 現在地が無く絞り込みできなかった
	LocationUnavailable bool `json:"location_unavailable"`
}

// MenuResponse メニューレスポンス
type MenuResponse struct {
	RestaurantID string `json:"restaurant_id"`
	Dishes       []Dish `json:"dishes"`
}

// FavoritesRequest お気に入り更新リクエスト
type FavoritesRequest struct {
	RestaurantIDs []string `json:"restaurant_ids"`
}

// RatingRequest 評価更新リクエスト
type RatingRequest struct {
	Rating       int  `json:"rating" binding:"required"`
	IsVegan      bool `json:"isVegan"`
	IsVegetarian bool `json:"isVegetarian"`
	IsGlutenFree bool `json:"isGlutenFree"`
}
