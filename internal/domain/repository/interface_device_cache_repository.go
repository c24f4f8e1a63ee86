package repository

import (
	"context"

	"DondeComo-App/internal/domain/model"
)

// DeviceCacheRepository 端末ごとのキー・バリューキャッシュ（お気に入り・評価）
type DeviceCacheRepository interface {
	RegisterDevice(ctx context.Context, device *model.Device) error
	DeviceExists(ctx context.Context, deviceID string) (bool, error)
	GetFavorites(ctx context.Context, deviceID string) (*model.Favorites, error)
	SaveFavorites(ctx context.Context, deviceID string, favorites *model.Favorites) error
	GetRating(ctx context.Context, deviceID, restaurantID string) (*model.Rating, error)
	SaveRating(ctx context.Context, deviceID string, rating *model.Rating) error
}
