package helper

import "DondeComo-App/internal/domain/model"

// ラプラタ中心部
var laPlata = model.GeoPoint{Latitude: -34.9164987, Longitude: -57.9560722}

// metersPerDegreeLat 子午線方向1度あたりのメートル数（R=6371km）
const metersPerDegreeLat = 111194.92664455873

// northOf origin から真北（負なら真南）に meters 移動した地点
func northOf(origin model.GeoPoint, meters float64) model.GeoPoint {
	return model.GeoPoint{
		Latitude:  origin.Latitude + meters/metersPerDegreeLat,
		Longitude: origin.Longitude,
	}
}

func newRestaurant(id, name string, p model.GeoPoint) *model.Restaurant {
	return &model.Restaurant{
		ID:        id,
		Name:      name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// scenarioRestaurants A≈50m北, B≈1500m北, C≈900m南
func scenarioRestaurants() (a, b, c *model.Restaurant) {
	a = newRestaurant("A", "Almacén Sin TACC", northOf(laPlata, 50))
	b = newRestaurant("B", "Bodegón Verde", northOf(laPlata, 1500))
	c = newRestaurant("C", "Café Celíaco", northOf(laPlata, -900))
	return a, b, c
}

func ids(restaurants []*model.Restaurant) []string {
	result := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, r.ID)
	}
	return result
}
