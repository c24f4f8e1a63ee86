package repository

import (
	"context"

	"DondeComo-App/internal/domain/model"
)

// RestaurantsRepository レストランの取得元
type RestaurantsRepository interface {
	// FindNearbyPage 周辺レストランを1ページ分取得する。cursor が空なら先頭ページ
	FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error)
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
	FindPromoted(ctx context.Context) (*model.Restaurant, error)
}
