package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
)

type DeviceCacheUseCase interface {
	// RegisterDevice 新しい端末IDを発行する
	RegisterDevice(ctx context.Context) (*model.Device, error)

	GetFavorites(ctx context.Context, deviceID string) (*model.Favorites, error)
	SaveFavorites(ctx context.Context, deviceID string, restaurantIDs []string) (*model.Favorites, error)

	GetRating(ctx context.Context, deviceID, restaurantID string) (*model.Rating, error)
	SaveRating(ctx context.Context, deviceID, restaurantID string, req *model.RatingRequest) (*model.Rating, error)
}

type deviceCacheUseCaseImpl struct {
	cacheRepo repository.DeviceCacheRepository
	now       func() time.Time
}

func NewDeviceCacheUseCase(cacheRepo repository.DeviceCacheRepository) DeviceCacheUseCase {
	return &deviceCacheUseCaseImpl{
		cacheRepo: cacheRepo,
		now:       time.Now,
	}
}

func (u *deviceCacheUseCaseImpl) RegisterDevice(ctx context.Context) (*model.Device, error) {
	device := &model.Device{
		ID:        uuid.New().String(),
		CreatedAt: u.now().UTC(),
	}
	if err := u.cacheRepo.RegisterDevice(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (u *deviceCacheUseCaseImpl) GetFavorites(ctx context.Context, deviceID string) (*model.Favorites, error) {
	if err := u.ensureDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	favorites, err := u.cacheRepo.GetFavorites(ctx, deviceID)
	if err != nil {
		if isCacheMiss(err) {
			return &model.Favorites{RestaurantIDs: []string{}}, nil
		}
		return nil, err
	}
	if favorites.RestaurantIDs == nil {
		favorites.RestaurantIDs = []string{}
	}
	return favorites, nil
}

// SaveFavorites 重複と空IDを除き、順序を保って保存する
func (u *deviceCacheUseCaseImpl) SaveFavorites(ctx context.Context, deviceID string, restaurantIDs []string) (*model.Favorites, error) {
	if err := u.ensureDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(restaurantIDs))
	ids := make([]string, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	favorites := &model.Favorites{
		RestaurantIDs: ids,
		UpdatedAt:     u.now().UTC(),
	}
	if err := u.cacheRepo.SaveFavorites(ctx, deviceID, favorites); err != nil {
		return nil, err
	}
	log.Printf("✅ お気に入りを保存: %s (%d件)", deviceID, len(ids))
	return favorites, nil
}

func (u *deviceCacheUseCaseImpl) GetRating(ctx context.Context, deviceID, restaurantID string) (*model.Rating, error) {
	if err := u.ensureDevice(ctx, deviceID); err != nil {
		return nil, err
	}
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: レストランIDを指定してください", model.ErrInvalidArgument)
	}
	return u.cacheRepo.GetRating(ctx, deviceID, restaurantID)
}

func (u *deviceCacheUseCaseImpl) SaveRating(ctx context.Context, deviceID, restaurantID string, req *model.RatingRequest) (*model.Rating, error) {
	if err := u.ensureDevice(ctx, deviceID); err != nil {
		return nil, err
	}
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: レストランIDを指定してください", model.ErrInvalidArgument)
	}
	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, fmt.Errorf("%w: 評価は%dから%dの範囲で指定してください", model.ErrInvalidArgument, model.MinRating, model.MaxRating)
	}

	rating := &model.Rating{
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		IsVegan:      req.IsVegan,
		IsVegetarian: req.IsVegetarian,
		IsGlutenFree: req.IsGlutenFree,
		UpdatedAt:    u.now().UTC(),
	}
	if err := u.cacheRepo.SaveRating(ctx, deviceID, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// ensureDevice 端末IDの形式と登録有無を確認する
func (u *deviceCacheUseCaseImpl) ensureDevice(ctx context.Context, deviceID string) error {
	if _, err := uuid.Parse(deviceID); err != nil {
		return fmt.Errorf("%w: 端末IDの形式が正しくありません (%s)", model.ErrInvalidArgument, deviceID)
	}
	exists, err := u.cacheRepo.DeviceExists(ctx, deviceID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: 端末 %s は登録されていません", model.ErrCacheEntryNotFound, deviceID)
	}
	return nil
}

func isCacheMiss(err error) bool {
	return errors.Is(err, model.ErrCacheEntryNotFound)
}
