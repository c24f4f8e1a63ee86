package service

import (
	"context"
	"fmt"
	"log"

	"DondeComo-App/internal/domain/helper"
	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
)

// RestaurantCollector 取得元のページを順に辿り、ID重複を除いて結合する
type RestaurantCollector interface {
	Collect(ctx context.Context, center model.GeoPoint, radiusMeters float64) ([]*model.Restaurant, error)
}

type restaurantCollector struct {
	repo     repository.RestaurantsRepository
	pageSize int
	maxPages int
}

func NewRestaurantCollector(repo repository.RestaurantsRepository, pageSize, maxPages int) RestaurantCollector {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &restaurantCollector{
		repo:     repo,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}

// Collect 先頭ページの失敗はエラー、2ページ目以降の失敗はそれまでの結果を返す
func (c *restaurantCollector) Collect(ctx context.Context, center model.GeoPoint, radiusMeters float64) ([]*model.Restaurant, error) {
	query := model.NearbyQuery{
		Center:       center,
		RadiusMeters: radiusMeters,
		PageSize:     c.pageSize,
	}

	var pages [][]*model.Restaurant
	cursor := ""

	for i := 0; i < c.maxPages; i++ {
		page, err := c.repo.FindNearbyPage(ctx, query, cursor)
		if err != nil {
			if len(pages) == 0 {
				return nil, fmt.Errorf("レストラン一覧の取得に失敗: %w", err)
			}
			log.Printf("⚠️ %dページ目の取得に失敗したため取得済みの結果を使用: %v", i+1, err)
			break
		}

		pages = append(pages, page.Restaurants)
		if !page.HasMore || page.NextCursor == "" || page.NextCursor == cursor {
			break
		}
		if i == c.maxPages-1 {
			log.Printf("⚠️ 最大ページ数 %d に達したため取得を打ち切り", c.maxPages)
		}
		cursor = page.NextCursor
	}

	merged := helper.MergeByID(pages...)
	log.Printf("✅ レストラン取得完了: %dページ, %d件", len(pages), len(merged))
	return merged, nil
}
