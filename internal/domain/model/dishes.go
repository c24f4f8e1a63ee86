package model

// Dish メニューの一品
type Dish struct {
	ID           string  `json:"id" db:"id"`                     // 料理ID
	RestaurantID string  `json:"restaurantId" db:"restaurant_id"` // 所属レストランID
	Name         string  `json:"name" db:"name"`                 // 料理名
	Description  string  `json:"description" db:"description"`   // 説明
	Price        float64 `json:"price" db:"price"`               // 価格
	ImageURL     string  `json:"image" db:"image"`               // 画像URL
	DietaryFlags
}
