package model

import "time"

// Device 端末キャッシュの所有者
type Device struct {
	ID        string    `json:"device_id" firestore:"device_id"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// Favorites お気に入りレストランID一覧
type Favorites struct {
	RestaurantIDs []string  `json:"restaurant_ids" firestore:"restaurant_ids"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updated_at"`
}

// Rating レストランへの評価と食事制限チェック
type Rating struct {
	RestaurantID string    `json:"restaurant_id" firestore:"restaurant_id"`
	Rating       int       `json:"rating" firestore:"rating"` // 1〜5
	IsVegan      bool      `json:"isVegan" firestore:"is_vegan"`
	IsVegetarian bool      `json:"isVegetarian" firestore:"is_vegetarian"`
	IsGlutenFree bool      `json:"isGlutenFree" firestore:"is_gluten_free"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updated_at"`
}

// 評価の範囲
const (
	MinRating = 1
	MaxRating = 5
)
