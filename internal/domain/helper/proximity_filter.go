package helper

import (
	"fmt"
	"math"
	"strings"

	"DondeComo-App/internal/domain/model"
)

// FilterRestaurants 現在地からの距離と店名の前方一致で絞り込む
// 入力順を保ち、現在地が無い場合は常に空を返す
func FilterRestaurants(points []*model.Restaurant, state model.SearchState) []*model.Restaurant {
	filtered := make([]*model.Restaurant, 0, len(points))
	if state.UserLocation == nil {
		return filtered
	}

	origin := *state.UserLocation
	prefix := strings.ToLower(state.QueryText)

	for _, p := range points {
		if p == nil {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(p.Name), prefix) {
			continue
		}
		if DistanceMeters(origin, p.Location()) <= state.MaxDistanceMeters {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// ValidateSearchState 検索条件をチェックする
func ValidateSearchState(state model.SearchState) error {
	if math.IsNaN(state.MaxDistanceMeters) || math.IsInf(state.MaxDistanceMeters, 0) || state.MaxDistanceMeters < 0 {
		return fmt.Errorf("%w: 検索半径は0以上の有限値で指定してください (%v)", model.ErrInvalidArgument, state.MaxDistanceMeters)
	}
	if state.UserLocation != nil {
		if err := ValidateGeoPoint(*state.UserLocation); err != nil {
			return err
		}
	}
	return nil
}
