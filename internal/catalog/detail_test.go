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

func seedDoc(t *testing.T, st *store.Memory, collection string, doc interface{}) {
	t.Helper()
	if _, err := st.InsertOne(context.Background(), collection, doc); err != nil {
		t.Fatalf("seed %s failed: %v", collection, err)
	}
}

func TestDetailByCodeMatchesSameShoeAsByID(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)
	ctx := context.Background()

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1, Code: "B75806", Model: "SAMBA OG"})

	byCode, err := agg.Detail(ctx, Lookup{Code: "B75806"})
	require.NoError(t, err)

	byID, err := agg.Detail(ctx, Lookup{ID: s1.Hex()})
	require.NoError(t, err)

	assert.Equal(t, byID, byCode)
	assert.Equal(t, s1.Hex(), byCode.ID)
}

func TestDetailIDTakesPriorityOverCodeAndModel(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	s2 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1, Code: "B75806"})
	seedDoc(t, st, "shoes", models.Shoe{ID: s2, Code: "JI2746"})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex(), Code: "JI2746", Model: "GAZELLE"})
	require.NoError(t, err)
	assert.Equal(t, s1.Hex(), detail.ID)
}

func TestDetailImagesEmptyWhenNoImageSet(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1, Code: "JP5330"})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex()})
	require.NoError(t, err)
	assert.Empty(t, detail.Images)
	assert.NotNil(t, detail.Images)
	assert.Empty(t, detail.Pinterest)
	assert.Empty(t, detail.Colors)
	assert.Empty(t, detail.Suggestion)
}

func TestDetailFlattensImageSetsInDocumentOrder(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: s1, Links: []string{"a.jpg", "b.jpg"}})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: s1, Links: []string{"c.jpg"}})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, detail.Images)
}

func TestDetailColorVariants(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	twoLinks := primitive.NewObjectID()
	oneLink := primitive.NewObjectID()
	dangling := primitive.NewObjectID()
	s1 := primitive.NewObjectID()

	seedDoc(t, st, "shoes", models.Shoe{ID: s1, Colors: models.ObjectIDList{twoLinks, oneLink, dangling}})
	seedDoc(t, st, "shoes", models.Shoe{ID: twoLinks, Code: "JI2725", Model: "GAZELLE"})
	seedDoc(t, st, "shoes", models.Shoe{ID: oneLink, Code: "JP5609"})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: twoLinks, Links: []string{"cover.jpg", "swatch.jpg"}})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: oneLink, Links: []string{"cover.jpg"}})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex()})
	require.NoError(t, err)

	// Only the variant with a second image qualifies; the swatch view is links[1].
	require.Len(t, detail.Colors, 1)
	assert.Equal(t, twoLinks.Hex(), detail.Colors[0].ShoeID)
	assert.Equal(t, "swatch.jpg", detail.Colors[0].Image)
	assert.Equal(t, "JI2725", detail.Colors[0].Code)
	assert.Equal(t, "GAZELLE", detail.Colors[0].Model)
}

func TestDetailSuggestionsUseFirstLinkAndSkipMissing(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	suggested := primitive.NewObjectID()
	noImages := primitive.NewObjectID()
	dangling := primitive.NewObjectID()

	seedDoc(t, st, "shoes", models.Shoe{ID: s1})
	seedDoc(t, st, "shoes", models.Shoe{ID: suggested, Code: "JS1192", Model: "SAMBAE"})
	seedDoc(t, st, "shoes", models.Shoe{ID: noImages})
	seedDoc(t, st, "images", models.ImageSet{ShoeID: suggested, Links: []string{"first.jpg", "second.jpg"}})
	seedDoc(t, st, "suggestion", models.Suggestion{ShoeID: s1, Shoes: models.ObjectIDList{suggested, noImages, dangling}})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex()})
	require.NoError(t, err)

	require.Len(t, detail.Suggestion, 1)
	assert.Equal(t, suggested.Hex(), detail.Suggestion[0].ShoeID)
	assert.Equal(t, "first.jpg", detail.Suggestion[0].Image)
}

func TestDetailPinterestIncludesLegacyField(t *testing.T) {
	st := store.NewMemory()
	agg := NewAggregator(st)

	s1 := primitive.NewObjectID()
	seedDoc(t, st, "shoes", models.Shoe{ID: s1})
	seedDoc(t, st, "pinterest", bson.M{"shoeId": s1, "links": bson.A{"new.jpg"}})
	seedDoc(t, st, "pinterest", bson.M{"Shoe": s1, "links": bson.A{"legacy.jpg"}})

	detail, err := agg.Detail(context.Background(), Lookup{ID: s1.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []string{"new.jpg", "legacy.jpg"}, detail.Pinterest)
}

func TestDetailMissingShoeIsNotFound(t *testing.T) {
	agg := NewAggregator(store.NewMemory())

	_, err := agg.Detail(context.Background(), Lookup{ID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDetailWithoutIdentifierIsBadRequest(t *testing.T) {
	agg := NewAggregator(store.NewMemory())

	_, err := agg.Detail(context.Background(), Lookup{})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = agg.Detail(context.Background(), Lookup{ID: "not-a-hex-id"})
	assert.ErrorIs(t, err, ErrBadRequest)
}
