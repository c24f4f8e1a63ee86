package usecase

import (
	"context"
	"fmt"

	"DondeComo-App/internal/domain/model"
)

type fakeCollector struct {
	restaurants []*model.Restaurant
	err         error
	calls       int
}

func (f *fakeCollector) Collect(ctx context.Context, center model.GeoPoint, radiusMeters float64) ([]*model.Restaurant, error) {
	f.calls++
	return f.restaurants, f.err
}

type fakeRestaurantsRepository struct {
	byID     map[string]*model.Restaurant
	promoted *model.Restaurant
}

func (f *fakeRestaurantsRepository) FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error) {
	return &model.RestaurantPage{}, nil
}

func (f *fakeRestaurantsRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", model.ErrRestaurantNotFound, id)
}

func (f *fakeRestaurantsRepository) FindPromoted(ctx context.Context) (*model.Restaurant, error) {
	if f.promoted == nil {
		return nil, model.ErrRestaurantNotFound
	}
	return f.promoted, nil
}

type fakeDishesRepository struct {
	dishes map[string][]model.Dish
}

func (f *fakeDishesRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]model.Dish, error) {
	return f.dishes[restaurantID], nil
}

type fakeDeviceCacheRepository struct {
	devices   map[string]*model.Device
	favorites map[string]*model.Favorites
	ratings   map[string]*model.Rating
}

func newFakeDeviceCacheRepository() *fakeDeviceCacheRepository {
	return &fakeDeviceCacheRepository{
		devices:   map[string]*model.Device{},
		favorites: map[string]*model.Favorites{},
		ratings:   map[string]*model.Rating{},
	}
}

func (f *fakeDeviceCacheRepository) RegisterDevice(ctx context.Context, device *model.Device) error {
	f.devices[device.ID] = device
	return nil
}

func (f *fakeDeviceCacheRepository) DeviceExists(ctx context.Context, deviceID string) (bool, error) {
	_, ok := f.devices[deviceID]
	return ok, nil
}

func (f *fakeDeviceCacheRepository) GetFavorites(ctx context.Context, deviceID string) (*model.Favorites, error) {
	if fav, ok := f.favorites[deviceID]; ok {
		return fav, nil
	}
	return nil, model.ErrCacheEntryNotFound
}

func (f *fakeDeviceCacheRepository) SaveFavorites(ctx context.Context, deviceID string, favorites *model.Favorites) error {
	f.favorites[deviceID] = favorites
	return nil
}

func (f *fakeDeviceCacheRepository) GetRating(ctx context.Context, deviceID, restaurantID string) (*model.Rating, error) {
	if r, ok := f.ratings[deviceID+"/"+model.RatingCacheKey(restaurantID)]; ok {
		return r, nil
	}
	return nil, model.ErrCacheEntryNotFound
}

func (f *fakeDeviceCacheRepository) SaveRating(ctx context.Context, deviceID string, rating *model.Rating) error {
	f.ratings[deviceID+"/"+model.RatingCacheKey(rating.RestaurantID)] = rating
	return nil
}
