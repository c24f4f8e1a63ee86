package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"DondeComo-App/internal/domain/model"
)

func TestFilterRestaurants(t *testing.T) {
	a, b, c := scenarioRestaurants()
	all := []*model.Restaurant{a, b, c}
	loc := laPlata

	t.Run("半径1000mでAとCが入力順で残る", func(t *testing.T) {
		got := FilterRestaurants(all, model.SearchState{MaxDistanceMeters: 1000, UserLocation: &loc})
		assert.Equal(t, []string{"A", "C"}, ids(got))
	})

	t.Run("現在地が無い場合は空", func(t *testing.T) {
		got := FilterRestaurants(all, model.SearchState{MaxDistanceMeters: math.MaxFloat64})
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("(0,0)付近のレストランも現在地無しでは返さない", func(t *testing.T) {
		origin := newRestaurant("O", "Origen", model.GeoPoint{})
		got := FilterRestaurants([]*model.Restaurant{origin}, model.SearchState{MaxDistanceMeters: 10})
		assert.Empty(t, got)
	})

	t.Run("空の入力", func(t *testing.T) {
		got := FilterRestaurants(nil, model.SearchState{MaxDistanceMeters: 1000, UserLocation: &loc})
		assert.Empty(t, got)
	})

	t.Run("半径0は同一地点のみ", func(t *testing.T) {
		here := newRestaurant("H", "Aquí", laPlata)
		got := FilterRestaurants([]*model.Restaurant{a, here}, model.SearchState{MaxDistanceMeters: 0, UserLocation: &loc})
		assert.Equal(t, []string{"H"}, ids(got))
	})

	t.Run("境界上の距離は含む", func(t *testing.T) {
		d := DistanceMeters(loc, c.Location())
		got := FilterRestaurants([]*model.Restaurant{c}, model.SearchState{MaxDistanceMeters: d, UserLocation: &loc})
		assert.Equal(t, []string{"C"}, ids(got))
	})
}

func TestFilterRestaurants_PrefixMatch(t *testing.T) {
	loc := laPlata
	trattoria := newRestaurant("1", "La Trattoria", northOf(laPlata, 10))
	reversed := newRestaurant("2", "Trattoria La", northOf(laPlata, 20))
	points := []*model.Restaurant{trattoria, reversed}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "La", want: []string{"1"}},
		{query: "la", want: []string{"1"}},
		{query: "LA TRAT", want: []string{"1"}},
		{query: "trattoria", want: []string{"2"}},
		{query: "", want: []string{"1", "2"}},
		{query: "Pizza", want: []string{}},
	}

	for _, tt := range tests {
		t.Run("query="+tt.query, func(t *testing.T) {
			got := FilterRestaurants(points, model.SearchState{QueryText: tt.query, MaxDistanceMeters: 100, UserLocation: &loc})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterRestaurants_MonotonicInRadius(t *testing.T) {
	loc := laPlata
	var points []*model.Restaurant
	for i, m := range []float64{-3000, 20, 450, -700, 1200, 2500, 9000} {
		points = append(points, newRestaurant(string(rune('a'+i)), "Resto", northOf(laPlata, m)))
	}

	radii := []float64{0, 100, 500, 1000, 2000, 5000, 10000}
	for i := 1; i < len(radii); i++ {
		smaller := FilterRestaurants(points, model.SearchState{MaxDistanceMeters: radii[i-1], UserLocation: &loc})
		larger := FilterRestaurants(points, model.SearchState{MaxDistanceMeters: radii[i], UserLocation: &loc})
		assert.Subset(t, ids(larger), ids(smaller), "半径 %v → %v", radii[i-1], radii[i])
	}
}

func TestValidateSearchState(t *testing.T) {
	loc := laPlata
	bad := model.GeoPoint{Latitude: 120}

	assert.NoError(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: 1000, UserLocation: &loc}))
	assert.NoError(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: 0}))
	assert.ErrorIs(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: -1}), model.ErrInvalidArgument)
	assert.ErrorIs(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: math.NaN()}), model.ErrInvalidArgument)
	assert.ErrorIs(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: math.Inf(1)}), model.ErrInvalidArgument)
	assert.ErrorIs(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: math.Inf(-1)}), model.ErrInvalidArgument)
	assert.ErrorIs(t, ValidateSearchState(model.SearchState{MaxDistanceMeters: 10, UserLocation: &bad}), model.ErrInvalidArgument)
}
