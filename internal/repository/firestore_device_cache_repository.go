package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
)

// FirestoreDeviceCacheRepository 端末ごとのキャッシュを devices/{id}/cache/{key} に保存する
type FirestoreDeviceCacheRepository struct {
	client *firestore.Client
}

// NewFirestoreDeviceCacheRepository 新しいFirestoreDeviceCacheRepositoryインスタンスを作成
func NewFirestoreDeviceCacheRepository(client *firestore.Client) repository.DeviceCacheRepository {
	return &FirestoreDeviceCacheRepository{
		client: client,
	}
}

func (r *FirestoreDeviceCacheRepository) deviceDoc(deviceID string) *firestore.DocumentRef {
	return r.client.Collection(model.CacheCollectionDevices).Doc(deviceID)
}

func (r *FirestoreDeviceCacheRepository) cacheDoc(deviceID, key string) *firestore.DocumentRef {
	return r.deviceDoc(deviceID).Collection(model.CacheSubcollectionValues).Doc(key)
}

func (r *FirestoreDeviceCacheRepository) RegisterDevice(ctx context.Context, device *model.Device) error {
	if _, err := r.deviceDoc(device.ID).Set(ctx, device); err != nil {
		log.Printf("❌ Failed to register device %s: %v", device.ID, err)
		return fmt.Errorf("端末の登録に失敗しました: %w", err)
	}
	log.Printf("✅ Device registered: %s", device.ID)
	return nil
}

func (r *FirestoreDeviceCacheRepository) DeviceExists(ctx context.Context, deviceID string) (bool, error) {
	_, err := r.deviceDoc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("端末情報の取得に失敗しました: %w", err)
	}
	return true, nil
}

func (r *FirestoreDeviceCacheRepository) GetFavorites(ctx context.Context, deviceID string) (*model.Favorites, error) {
	var favorites model.Favorites
	if err := r.getCacheValue(ctx, deviceID, model.CacheKeyFavorites, &favorites); err != nil {
		return nil, err
	}
	return &favorites, nil
}

func (r *FirestoreDeviceCacheRepository) SaveFavorites(ctx context.Context, deviceID string, favorites *model.Favorites) error {
	return r.setCacheValue(ctx, deviceID, model.CacheKeyFavorites, favorites)
}

func (r *FirestoreDeviceCacheRepository) GetRating(ctx context.Context, deviceID, restaurantID string) (*model.Rating, error) {
	var rating model.Rating
	if err := r.getCacheValue(ctx, deviceID, model.RatingCacheKey(restaurantID), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *FirestoreDeviceCacheRepository) SaveRating(ctx context.Context, deviceID string, rating *model.Rating) error {
	return r.setCacheValue(ctx, deviceID, model.RatingCacheKey(rating.RestaurantID), rating)
}

func (r *FirestoreDeviceCacheRepository) getCacheValue(ctx context.Context, deviceID, key string, dst interface{}) error {
	doc, err := r.cacheDoc(deviceID, key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s/%s", model.ErrCacheEntryNotFound, deviceID, key)
		}
		return fmt.Errorf("キャッシュの取得に失敗しました: %w", err)
	}
	if err := doc.DataTo(dst); err != nil {
		return fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return nil
}

func (r *FirestoreDeviceCacheRepository) setCacheValue(ctx context.Context, deviceID, key string, value interface{}) error {
	if _, err := r.cacheDoc(deviceID, key).Set(ctx, value); err != nil {
		log.Printf("❌ Failed to save cache %s/%s: %v", deviceID, key, err)
		return fmt.Errorf("キャッシュの保存に失敗しました: %w", err)
	}
	return nil
}
