package model

// テーブル名
const (
	TableRestaurants = "Restaurantes"
	TableDishes      = "Platos"
)

// DefaultMaxDistanceMeters 検索半径の初期値
const DefaultMaxDistanceMeters = 15000.0

// 表示用プレースホルダー（アプリの表示文言に合わせてスペイン語）
const (
	DefaultAddress     = "Dirección no disponible"
	DefaultPhone       = "Teléfono no disponible"
	DefaultDescription = "Descripción no disponible"
	DefaultImageURL    = "https://via.placeholder.com/150"
)

// 端末キャッシュのキー
const (
	CacheKeyFavorites        = "favoriteRestaurants"
	CacheKeyRatingPrefix     = "restaurant_"
	CacheCollectionDevices   = "devices"
	CacheSubcollectionValues = "cache"
)

// RatingCacheKey レストランごとの評価キーを返す
func RatingCacheKey(restaurantID string) string {
	return CacheKeyRatingPrefix + restaurantID
}
