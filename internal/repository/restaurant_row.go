package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"DondeComo-App/internal/domain/model"
)

// flexibleID 数値・文字列どちらのIDも文字列として受け取る
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("IDの形式が不正です: %s", string(data))
	}
	*f = flexibleID(n.String())
	return nil
}

// restaurantRow Restaurantes テーブルの1行（NULL許容列はポインタ）
type restaurantRow struct {
	ID            flexibleID `json:"id"`
	Name          string     `json:"name"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Address       *string    `json:"address"`
	Phone         *string    `json:"phone"`
	Description   *string    `json:"description"`
	Image         *string    `json:"image"`
	IsPromoted    *bool      `json:"isPromoted"`
	IsGlutenFree  *bool      `json:"isGlutenFree"`
	IsVegetarian  *bool      `json:"isVegetarian"`
	IsVegan       *bool      `json:"isVegan"`
	IsLactoseFree *bool      `json:"isLactoseFree"`
}

// ToRestaurant 行データをドメインモデルに変換し、空項目はプレースホルダーで埋める
// 座標が欠けている行は (0,0) 扱いにせずエラーにする
func (row *restaurantRow) ToRestaurant() (*model.Restaurant, error) {
	if row.Latitude == nil || row.Longitude == nil {
		return nil, missingCoordinatesError(string(row.ID))
	}
	r := &model.Restaurant{
		ID:          string(row.ID),
		Name:        row.Name,
		Latitude:    *row.Latitude,
		Longitude:   *row.Longitude,
		Address:     deref(row.Address),
		Phone:       deref(row.Phone),
		Description: deref(row.Description),
		ImageURL:    deref(row.Image),
		IsPromoted:  derefBool(row.IsPromoted),
		DietaryFlags: model.DietaryFlags{
			IsGlutenFree:  derefBool(row.IsGlutenFree),
			IsVegetarian:  derefBool(row.IsVegetarian),
			IsVegan:       derefBool(row.IsVegan),
			IsLactoseFree: derefBool(row.IsLactoseFree),
		},
	}
	r.ApplyDefaults()
	return r, nil
}

func missingCoordinatesError(id string) error {
	return fmt.Errorf("%w: レストランID %s の座標が登録されていません", model.ErrInvalidArgument, id)
}

// decodeRestaurants PostgREST のレスポンスを変換（座標の無い行は警告を出して除外）
func decodeRestaurants(data []byte) ([]*model.Restaurant, error) {
	var rows []restaurantRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("レストランデータのJSONアンマーシャル失敗: %w", err)
	}
	restaurants := make([]*model.Restaurant, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToRestaurant()
		if err != nil {
			log.Printf("⚠️ レストランデータをスキップ: %v", err)
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

// dishRow Platos テーブルの1行
type dishRow struct {
	ID            flexibleID `json:"id"`
	RestaurantID  flexibleID `json:"restaurantId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price"`
	Image         *string    `json:"image"`
	IsVegan       *bool      `json:"isVegan"`
	IsVegetarian  *bool      `json:"isVegetarian"`
	IsLactoseFree *bool      `json:"isLactoseFree"`
	IsGlutenFree  *bool      `json:"isGlutenFree"`
}

// ToDish 行データをドメインモデルに変換
func (row *dishRow) ToDish() model.Dish {
	d := model.Dish{
		ID:           string(row.ID),
		RestaurantID: string(row.RestaurantID),
		Name:         row.Name,
		Description:  deref(row.Description),
		ImageURL:     deref(row.Image),
		DietaryFlags: model.DietaryFlags{
			IsGlutenFree:  derefBool(row.IsGlutenFree),
			IsVegetarian:  derefBool(row.IsVegetarian),
			IsVegan:       derefBool(row.IsVegan),
			IsLactoseFree: derefBool(row.IsLactoseFree),
		},
	}
	if row.Price != nil {
		d.Price = *row.Price
	}
	if d.ImageURL == "" {
		d.ImageURL = model.DefaultImageURL
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
