package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"DondeComo-App/internal/domain/model"
)

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      model.GeoPoint
		want      float64
		tolerance float64
	}{
		{
			name: "同一地点",
			a:    laPlata, b: laPlata,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "真北に1000m",
			a:    laPlata, b: northOf(laPlata, 1000),
			want: 1000, tolerance: 0.01,
		},
		{
			name:      "ラプラタからブエノスアイレス（約53km）",
			a:         laPlata,
			b:         model.GeoPoint{Latitude: -34.6037, Longitude: -58.3816},
			want:      52000,
			tolerance: 3000,
		},
		{
			name:      "赤道上の経度1度",
			a:         model.GeoPoint{Latitude: 0, Longitude: 0},
			b:         model.GeoPoint{Latitude: 0, Longitude: 1},
			want:      metersPerDegreeLat,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	points := []model.GeoPoint{
		laPlata,
		{Latitude: 35.0116, Longitude: 135.7681},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: -179.9},
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
		}
		assert.Equal(t, 0.0, DistanceMeters(a, a))
	}
}

func TestDistanceMeters_Monotonic(t *testing.T) {
	prev := 0.0
	for _, m := range []float64{10, 100, 1000, 10000, 100000} {
		d := DistanceMeters(laPlata, northOf(laPlata, m))
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestValidateGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		point   model.GeoPoint
		wantErr bool
	}{
		{name: "正常", point: laPlata},
		{name: "境界値", point: model.GeoPoint{Latitude: -90, Longitude: 180}},
		{name: "緯度が範囲外", point: model.GeoPoint{Latitude: 90.1, Longitude: 0}, wantErr: true},
		{name: "経度が範囲外", point: model.GeoPoint{Latitude: 0, Longitude: -180.5}, wantErr: true},
		{name: "NaN", point: model.GeoPoint{Latitude: math.NaN(), Longitude: 0}, wantErr: true},
		{name: "Inf", point: model.GeoPoint{Latitude: 0, Longitude: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeoPoint(tt.point)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithDistancesAndSort(t *testing.T) {
	a, b, c := scenarioRestaurants()
	items := WithDistances(laPlata, []*model.Restaurant{b, nil, c, a})
	assert.Len(t, items, 3)
	assert.InDelta(t, 1500, items[0].DistanceMeters, 0.1)

	SortByDistance(items)
	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "C", items[1].ID)
	assert.Equal(t, "B", items[2].ID)
}
