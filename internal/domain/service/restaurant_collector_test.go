package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DondeComo-App/internal/domain/model"
)

type fakePagedRepository struct {
	pages   map[string]*model.RestaurantPage
	errs    map[string]error
	cursors []string
}

func (f *fakePagedRepository) FindNearbyPage(ctx context.Context, query model.NearbyQuery, cursor string) (*model.RestaurantPage, error) {
	f.cursors = append(f.cursors, cursor)
	if err := f.errs[cursor]; err != nil {
		return nil, err
	}
	if page, ok := f.pages[cursor]; ok {
		return page, nil
	}
	return &model.RestaurantPage{}, nil
}

func (f *fakePagedRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	return nil, model.ErrRestaurantNotFound
}

func (f *fakePagedRepository) FindPromoted(ctx context.Context) (*model.Restaurant, error) {
	return nil, model.ErrRestaurantNotFound
}

func r(id string) *model.Restaurant {
	return &model.Restaurant{ID: id, Name: "Resto " + id}
}

func TestRestaurantCollector_MergesPages(t *testing.T) {
	repo := &fakePagedRepository{pages: map[string]*model.RestaurantPage{
		"":   {Restaurants: []*model.Restaurant{r("1"), r("2")}, NextCursor: "p2", HasMore: true},
		"p2": {Restaurants: []*model.Restaurant{r("2"), r("3")}, NextCursor: "p3", HasMore: true},
		"p3": {Restaurants: []*model.Restaurant{r("4")}},
	}}
	collector := NewRestaurantCollector(repo, 2, 5)

	got, err := collector.Collect(context.Background(), model.GeoPoint{}, 1000)
	require.NoError(t, err)

	var ids []string
	for _, x := range got {
		ids = append(ids, x.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	assert.Equal(t, []string{"", "p2", "p3"}, repo.cursors)
}

func TestRestaurantCollector_StopsAtMaxPages(t *testing.T) {
	repo := &fakePagedRepository{pages: map[string]*model.RestaurantPage{
		"":   {Restaurants: []*model.Restaurant{r("1")}, NextCursor: "p2", HasMore: true},
		"p2": {Restaurants: []*model.Restaurant{r("2")}, NextCursor: "p3", HasMore: true},
	}}
	collector := NewRestaurantCollector(repo, 1, 2)

	got, err := collector.Collect(context.Background(), model.GeoPoint{}, 1000)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"", "p2"}, repo.cursors)
}

func TestRestaurantCollector_Failures(t *testing.T) {
	boom := errors.New("network down")

	t.Run("先頭ページの失敗はエラー", func(t *testing.T) {
		repo := &fakePagedRepository{errs: map[string]error{"": boom}}
		_, err := NewRestaurantCollector(repo, 10, 3).Collect(context.Background(), model.GeoPoint{}, 1000)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("途中ページの失敗は取得済みの結果を返す", func(t *testing.T) {
		repo := &fakePagedRepository{
			pages: map[string]*model.RestaurantPage{
				"": {Restaurants: []*model.Restaurant{r("1")}, NextCursor: "p2", HasMore: true},
			},
			errs: map[string]error{"p2": boom},
		}
		got, err := NewRestaurantCollector(repo, 10, 3).Collect(context.Background(), model.GeoPoint{}, 1000)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("同じカーソルが返されたら打ち切る", func(t *testing.T) {
		repo := &fakePagedRepository{pages: map[string]*model.RestaurantPage{
			"": {Restaurants: []*model.Restaurant{r("1")}, NextCursor: "", HasMore: true},
		}}
		got, err := NewRestaurantCollector(repo, 10, 3).Collect(context.Background(), model.GeoPoint{}, 1000)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Len(t, repo.cursors, 1)
	})
}
