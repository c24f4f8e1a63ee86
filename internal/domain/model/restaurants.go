package model

import "github.com/paulmach/orb"

// GeoPoint WGS-84 の緯度経度（度）
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToOrbPoint orb.Point（経度, 緯度の順）に変換
func (g GeoPoint) ToOrbPoint() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// DietaryFlags 食事制限への対応フラグ
type DietaryFlags struct {
	IsGlutenFree  bool `json:"isGlutenFree" db:"is_gluten_free"`   // グルテンフリー
	IsVegetarian  bool `json:"isVegetarian" db:"is_vegetarian"`    // ベジタリアン
	IsVegan       bool `json:"isVegan" db:"is_vegan"`              // ヴィーガン
	IsLactoseFree bool `json:"isLactoseFree" db:"is_lactose_free"` // 乳糖不使用
}

// Restaurant 検索対象となるレストラン
type Restaurant struct {
	ID          string  `json:"id" db:"id"`                   // ユニークなレストランID
	Name        string  `json:"name" db:"name"`               // 店名
	Latitude    float64 `json:"latitude" db:"latitude"`       // 緯度
	Longitude   float64 `json:"longitude" db:"longitude"`     // 経度
	Address     string  `json:"address" db:"address"`         // 住所
	Phone       string  `json:"phone" db:"phone"`             // 電話番号
	Description string  `json:"description" db:"description"` // 説明文
	ImageURL    string  `json:"image" db:"image"`             // 画像URL
	IsPromoted  bool    `json:"isPromoted" db:"is_promoted"`  // プロモーション対象
	DietaryFlags
}

// Location レストランの位置を GeoPoint で返す
func (r *Restaurant) Location() GeoPoint {
	return GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude}
}

// ApplyDefaults 空の表示項目をプレースホルダーで埋める
func (r *Restaurant) ApplyDefaults() {
	if r.Address == "" {
		r.Address = DefaultAddress
	}
	if r.Phone == "" {
		r.Phone = DefaultPhone
	}
	if r.Description == "" {
		r.Description = DefaultDescription
	}
	if r.ImageURL == "" {
		r.ImageURL = DefaultImageURL
	}
}

// RestaurantWithDistance 検索結果として距離を付与したレストラン
type RestaurantWithDistance struct {
	*Restaurant
	DistanceMeters float64 `json:"distance_meters"`
}
