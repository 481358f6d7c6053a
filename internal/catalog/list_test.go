package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/store"
)

func TestShoesWithImagesUsesFirstLinkOfFirstSet(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	withCover := primitive.NewObjectID()
	withoutCover := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: withCover, Code: "B75806", Model: "SAMBA OG"})
	seedDoc(t, st, "shoes", models.Shoe{ID: withoutCover, Code: "JI2746"})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: withCover, Links: []string{"cover.jpg", "other.jpg"}})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: withCover, Links: []string{"later-set.jpg"}})

	shoes, err := agg.ShoesWithImages(context.Background())
	require.NoError(t, err)
	require.Len(t, shoes, 2)

	assert.Equal(t, "cover.jpg", shoes[0].CoverImage)
	assert.Equal(t, "", shoes[1].CoverImage)
}

func TestShoesWithImagesKeepsNaturalOrder(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	codes := []string{"JP5330", "JP5609", "Jl1349"}
	for _, code := range codes {
		seedDoc(t, st, "shoes", models.Shoe{ID: primitive.NewObjectID(), Code: code})
	}

	shoes, err := agg.ShoesWithImages(context.Background())
	require.NoError(t, err)
	require.Len(t, shoes, 3)
	for i, code := range codes {
		assert.Equal(t, code, shoes[i].Code)
	}
}

func TestShoesWithTagsTriStateFilter(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)
	ctx := context.Background()

	ids := make([]primitive.ObjectID, 5)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
		seedDoc(t, st, "shoes", models.Shoe{ID: ids[i]})
	}

	// Two tagged shoes: one tag stored as string, one as ObjectId.
	seedDoc(t, st, "tag", bson.M{"shoeId": ids[0].Hex(), "tagAddress": "6C:FD:22:76:00:01"})
	seedDoc(t, st, "tag", bson.M{"shoeId": ids[1], "tagAddress": "6C:FD:22:76:00:02"})

	all, err := agg.ShoesWithTags(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	tagged := true
	withTags, err := agg.ShoesWithTags(ctx, &tagged)
	require.NoError(t, err)
	require.Len(t, withTags, 2)
	assert.Equal(t, ids[0].Hex(), withTags[0].ID)
	assert.Equal(t, ids[1].Hex(), withTags[1].ID)
	assert.Equal(t, []string{"6C:FD:22:76:00:01"}, withTags[0].Tags)

	untagged := false
	withoutTags, err := agg.ShoesWithTags(ctx, &untagged)
	require.NoError(t, err)
	assert.Len(t, withoutTags, 3)
	for _, shoe := range withoutTags {
		assert.Empty(t, shoe.Tags)
	}
}

func TestPinterestViewFlattensLinks(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1, Code: "B75806", Model: "SAMBA OG"})
	seedDoc(t, st, "pinterest", bson.M{"shoeId": s1, "links": bson.A{"one.jpg", "two.jpg"}})

	view, err := agg.Pinterest(context.Background(), Lookup{Code: "B75806"})
	require.NoError(t, err)
	assert.Equal(t, s1.Hex(), view.ID)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, view.Links)
}

func TestShoeByTagAddress(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)
	ctx := context.Background()

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "tag", bson.M{"shoeId": s1.Hex(), "tagAddress": "6C:FD:22:76:0A:0B"})

	shoeID, err := agg.ShoeByTagAddress(ctx, "6C:FD:22:76:0A:0B")
	require.NoError(t, err)
	assert.Equal(t, s1.Hex(), shoeID)

	_, err = agg.ShoeByTagAddress(ctx, "")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = agg.ShoeByTagAddress(ctx, "6C:FD:22:76:FF:FF")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
