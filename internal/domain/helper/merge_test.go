package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DondeComo-App/internal/domain/model"
)

func TestMergeByID(t *testing.T) {
	first := &model.Restaurant{ID: "1", Name: "primera"}
	dup := &model.Restaurant{ID: "1", Name: "duplicada"}
	second := &model.Restaurant{ID: "2", Name: "segunda"}
	third := &model.Restaurant{ID: "3", Name: "tercera"}

	merged := MergeByID([]*model.Restaurant{first, second}, []*model.Restaurant{dup, nil, third})

	assert.Equal(t, []string{"1", "2", "3"}, ids(merged))
	assert.Equal(t, "primera", merged[0].Name)
	assert.Empty(t, MergeByID())
}

func TestFindPromotedAndByID(t *testing.T) {
	list := []*model.Restaurant{
		{ID: "1"},
		{ID: "2", IsPromoted: true},
		{ID: "3", IsPromoted: true},
	}
	assert.Equal(t, "2", FindPromoted(list).ID)
	assert.Nil(t, FindPromoted(list[:1]))
	assert.Equal(t, "3", FindByID(list, "3").ID)
	assert.Nil(t, FindByID(list, "9"))
}
