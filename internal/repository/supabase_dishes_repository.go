package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
	"DondeComo-App/internal/infrastructure/database"
)

type SupabaseDishesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseDishesRepository(client *database.SupabaseClient) repository.DishesRepository {
	return &SupabaseDishesRepository{
		client: client,
	}
}

// GetByRestaurantID レストランのメニューを取得する
func (r *SupabaseDishesRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]model.Dish, error) {
	var rows []dishRow
	data, count, err := r.client.GetClient().From(model.TableDishes).
		Select("*", "", false).
		Eq("restaurantId", restaurantID).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("レストラン %s のメニュー取得失敗: %w", restaurantID, err)
	}
	_ = count

	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("メニューデータのJSONアンマーシャル失敗: %w", err)
	}

	dishes := make([]model.Dish, 0, len(rows))
	for i := range rows {
		dishes = append(dishes, rows[i].ToDish())
	}
	return dishes, nil
}
