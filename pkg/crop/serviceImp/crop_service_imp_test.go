package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmmate/database"
	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/crop/repositoryImp"
	"farmmate/pkg/crop/service"
)

func newService(t *testing.T) service.CropService {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewCropService(repositoryImp.New(db))
}

func TestCropCreateDefaultsStatus(t *testing.T) {
	svc := newService(t)
	c, err := svc.Create(context.Background(), "user-1", service.CropInput{Category: "배추", Name: "콜라비", Variety: "그린"})
	require.NoError(t, err)
	assert.Equal(t, entities.CropGrowing, c.Status)
}

func TestCropValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", service.CropInput{Name: "콜라비", Variety: "그린"})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Contains(t, err.Error(), "category")

	_, err = svc.Create(ctx, "user-1", service.CropInput{Category: "배추", Name: "콜라비", Variety: "그린", Status: "dead"})
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	c, err := svc.Create(ctx, "user-1", service.CropInput{Category: "배추", Name: "콜라비", Variety: "그린"})
	require.NoError(t, err)
	harvesting := entities.CropHarvesting
	up, err := svc.Update(ctx, "user-1", c.ID, service.CropPatch{Status: &harvesting})
	require.NoError(t, err)
	assert.Equal(t, entities.CropHarvesting, up.Status)

	bogus := "sleeping"
	_, err = svc.Update(ctx, "user-1", c.ID, service.CropPatch{Status: &bogus})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCropSearch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, in := range []service.CropInput{
		{Category: "배추", Name: "콜라비", Variety: "그린"},
		{Category: "뿌리채소", Name: "당근", Variety: "퍼플"},
		{Category: "뿌리채소", Name: "Beet", Variety: "Red_100%"},
	} {
		_, err := svc.Create(ctx, "user-1", in)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "user-2", service.CropInput{Category: "뿌리채소", Name: "무", Variety: "청"})
	require.NoError(t, err)

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"콜라비", "당근", "Beet"}},
		{"뿌리", []string{"당근", "Beet"}},
		{"퍼플", []string{"당근"}},
		{"beet", []string{"Beet"}},
		{"%", []string{"Beet"}},
		{"_1", []string{"Beet"}},
		{"없음", nil},
	}
	for _, tc := range cases {
		got, err := svc.List(ctx, "user-1", tc.query)
		require.NoError(t, err)
		var names []string
		for _, c := range got {
			names = append(names, c.Name)
		}
		assert.Equal(t, tc.want, names, "query %q", tc.query)
	}
}

func TestCropDeleteScopedToUser(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "user-1", service.CropInput{Category: "배추", Name: "콜라비", Variety: "그린"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(ctx, "user-2", c.ID), apperr.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "user-1", c.ID))
}
