package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
	"DondeComo-App/internal/infrastructure/database"
)

type SupabaseRestaurantsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRestaurantsRepository(client *database.SupabaseClient) repository.RestaurantsRepository {
	return &SupabaseRestaurantsRepository{
		client: client,
	}
}

// FindNearbyPage 境界ボックス内のレストランをID順に1ページ分取得する
func (r *SupabaseRestaurantsRepository) FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error) {
	offset, err := parseOffsetCursor(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: カーソルが不正です (%s)", err, cursor)
	}
	pageSize := pageSizeOrDefault(query.PageSize)
	bound := SearchBound(query.Center, query.RadiusMeters)

	// 次ページの有無を判定するため1件多く取得する
	data, count, err := r.client.GetClient().From(model.TableRestaurants).
		Select("*", "", false).
		And(boundFilter(bound), "").
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Range(offset, offset+pageSize, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("周辺レストランデータの取得失敗: %w", err)
	}
	_ = count

	restaurants, err := decodeRestaurants(data)
	if err != nil {
		return nil, err
	}

	return buildOffsetPage(restaurants, offset, pageSize), nil
}

func (r *SupabaseRestaurantsRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	data, count, err := r.client.GetClient().From(model.TableRestaurants).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("レストランデータの取得失敗: %w", err)
	}
	_ = count

	restaurants, err := decodeRestaurants(data)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("%w: レストランID %s が見つからないか座標が登録されていません", model.ErrRestaurantNotFound, id)
	}

	return restaurants[0], nil
}

// FindPromoted プロモーション対象のレストランを1件取得する
func (r *SupabaseRestaurantsRepository) FindPromoted(ctx context.Context) (*model.Restaurant, error) {
	data, count, err := r.client.GetClient().From(model.TableRestaurants).
		Select("*", "", false).
		Eq("isPromoted", "true").
		Not("latitude", "is", "null").
		Not("longitude", "is", "null").
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("プロモーション対象レストランの取得失敗: %w", err)
	}
	_ = count

	restaurants, err := decodeRestaurants(data)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("%w: プロモーション対象のレストランがありません", model.ErrRestaurantNotFound)
	}

	return restaurants[0], nil
}
