package helper

import (
	"fmt"
	"math"
	"sort"

	"DondeComo-App/internal/domain/model"
)

// EarthRadiusMeters 距離計算に使う地球の平均半径（メートル）
const EarthRadiusMeters = 6371000.0

// DistanceMeters 2点間の大圏距離をハバーサイン公式で計算する（メートル）
func DistanceMeters(a, b model.GeoPoint) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	dPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// ValidateGeoPoint 緯度経度が有限かつ範囲内かチェック
func ValidateGeoPoint(p model.GeoPoint) error {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) ||
		math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return fmt.Errorf("%w: 座標が数値ではありません (%v, %v)", model.ErrInvalidArgument, p.Latitude, p.Longitude)
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: 緯度は-90から90の範囲で指定してください (%v)", model.ErrInvalidArgument, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: 経度は-180から180の範囲で指定してください (%v)", model.ErrInvalidArgument, p.Longitude)
	}
	return nil
}

// WithDistances 各レストランに origin からの距離を付与する（順序はそのまま）
func WithDistances(origin model.GeoPoint, restaurants []*model.Restaurant) []model.RestaurantWithDistance {
	result := make([]model.RestaurantWithDistance, 0, len(restaurants))
	for _, r := range restaurants {
		if r == nil {
			continue
		}
		result = append(result, model.RestaurantWithDistance{
			Restaurant:     r,
			DistanceMeters: DistanceMeters(origin, r.Location()),
		})
	}
	return result
}

// SortByDistance 距離の昇順に並べ替える（同距離は元の順序を維持）
func SortByDistance(items []model.RestaurantWithDistance) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DistanceMeters < items[j].DistanceMeters
	})
}
