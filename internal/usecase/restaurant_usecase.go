package usecase

import (
	"context"
	"fmt"
	"log"

	"DondeComo-App/internal/domain/helper"
	"DondeComo-App/internal/domain/model"
	"DondeComo-App/internal/domain/repository"
	"DondeComo-App/internal/domain/service"
)

type RestaurantUseCase interface {
	// Search 現在地・半径・店名の前方一致で絞り込んだレストランを距離付きで返す
	Search(ctx context.Context, state model.SearchState) (*model.SearchResponse, error)

	// Next 現在のレストランから最も近い未訪問のレストランを選ぶ
	Next(ctx context.Context, currentID string, visitedIDs []string, state model.SearchState) (*model.NextRestaurantResponse, error)

	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
	GetPromoted(ctx context.Context) (*model.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) (*model.MenuResponse, error)
}

// restaurantUseCaseImpl はRestaurantUseCaseの実装
type restaurantUseCaseImpl struct {
	collector       service.RestaurantCollector
	restaurantsRepo repository.RestaurantsRepository
	dishesRepo      repository.DishesRepository
}

// NewRestaurantUseCase は新しいRestaurantUseCaseインスタンスを作成
func NewRestaurantUseCase(
	collector service.RestaurantCollector,
	restaurantsRepo repository.RestaurantsRepository,
	dishesRepo repository.DishesRepository,
) RestaurantUseCase {
	return &restaurantUseCaseImpl{
		collector:       collector,
		restaurantsRepo: restaurantsRepo,
		dishesRepo:      dishesRepo,
	}
}

func (u *restaurantUseCaseImpl) Search(ctx context.Context, state model.SearchState) (*model.SearchResponse, error) {
	if err := helper.ValidateSearchState(state); err != nil {
		return nil, err
	}
	if state.UserLocation == nil {
		log.Printf("⚠️ %v: 検索結果は空になります", model.ErrLocationUnavailable)
		return &model.SearchResponse{
			Restaurants:         []model.RestaurantWithDistance{},
			LocationUnavailable: true,
		}, nil
	}

	log.Printf("🚀 レストラン検索開始 (q=%q, 半径=%.0fm)", state.QueryText, state.MaxDistanceMeters)

	filtered, err := u.candidates(ctx, state)
	if err != nil {
		return nil, err
	}

	results := helper.WithDistances(*state.UserLocation, filtered)
	return &model.SearchResponse{
		Restaurants: results,
		Count:       len(results),
	}, nil
}

func (u *restaurantUseCaseImpl) Next(ctx context.Context, currentID string, visitedIDs []string, state model.SearchState) (*model.NextRestaurantResponse, error) {
	if currentID == "" {
		return nil, fmt.Errorf("%w: current_id を指定してください", model.ErrInvalidArgument)
	}
	if err := helper.ValidateSearchState(state); err != nil {
		return nil, err
	}
	if state.UserLocation == nil {
		return nil, fmt.Errorf("%w: 現在地が無いため次のレストランを選べません", model.ErrLocationUnavailable)
	}

	candidates, err := u.candidates(ctx, state)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: 条件に合うレストランがありません", model.ErrRestaurantNotFound)
	}

	// 現在のレストランが絞り込み結果に無い場合は取得元から引く
	current := helper.FindByID(candidates, currentID)
	if current == nil {
		current, err = u.restaurantsRepo.GetByID(ctx, currentID)
		if err != nil {
			return nil, err
		}
	}

	cycle := model.NewVisitCycle(knownIDs(visitedIDs, candidates)...)
	selection, nextCycle, err := helper.NextUnvisited(current, candidates, cycle)
	if err != nil {
		return nil, err
	}

	resp := &model.NextRestaurantResponse{
		VisitedIDs: nextCycle.IDs(),
		CycleReset: selection.CycleReset,
	}
	if selection.CycleReset {
		log.Printf("🔄 全%d件を巡回したため訪問履歴をリセット", len(candidates))
		return resp, nil
	}

	resp.Restaurant = &model.RestaurantWithDistance{
		Restaurant:     selection.Restaurant,
		DistanceMeters: helper.DistanceMeters(*state.UserLocation, selection.Restaurant.Location()),
	}
	log.Printf("✅ 次のレストラン: %s → %s", current.ID, selection.Restaurant.ID)
	return resp, nil
}

func (u *restaurantUseCaseImpl) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: レストランIDを指定してください", model.ErrInvalidArgument)
	}
	return u.restaurantsRepo.GetByID(ctx, id)
}

func (u *restaurantUseCaseImpl) GetPromoted(ctx context.Context) (*model.Restaurant, error) {
	return u.restaurantsRepo.FindPromoted(ctx)
}

func (u *restaurantUseCaseImpl) GetMenu(ctx context.Context, restaurantID string) (*model.MenuResponse, error) {
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: レストランIDを指定してください", model.ErrInvalidArgument)
	}
	dishes, err := u.dishesRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}
	return &model.MenuResponse{
		RestaurantID: restaurantID,
		Dishes:       dishes,
	}, nil
}

// candidates 取得元から集めた結果を検索条件で絞り込む
func (u *restaurantUseCaseImpl) candidates(ctx context.Context, state model.SearchState) ([]*model.Restaurant, error) {
	collected, err := u.collector.Collect(ctx, *state.UserLocation, state.MaxDistanceMeters)
	if err != nil {
		return nil, err
	}
	return helper.FilterRestaurants(collected, state), nil
}

// knownIDs 候補に存在しないIDを訪問履歴から除く
func knownIDs(visitedIDs []string, candidates []*model.Restaurant) []string {
	known := make([]string, 0, len(visitedIDs))
	for _, id := range visitedIDs {
		if helper.FindByID(candidates, id) != nil {
			known = append(known, id)
		}
	}
	return known
}
