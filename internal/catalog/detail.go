// Package catalog composes display views out of the independently stored
// shoe collections. Missing related documents are never an error: each facet
// simply comes back empty. Only a missing primary shoe aborts a lookup.
package catalog

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/store"
)

const (
	shoesCollection      = "shoes"
	imagesCollection     = "images"
	suggestionCollection = "suggestion"
	pinterestCollection  = "pinterest"
	tagCollection        = "tag"
)

// Aggregator joins the shoe collections into composed read views.
type Aggregator struct {
	store store.Store
}

func NewAggregator(st store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// RelatedShoe is the summary emitted for color variants and suggestions.
type RelatedShoe struct {
	ShoeID string `json:"shoeId"`
	Image  string `json:"image"`
	Code   string `json:"code"`
	Model  string `json:"model"`
}

// ShoeDetail is the full single-shoe view.
type ShoeDetail struct {
	ID          string        `json:"id"`
	Code        string        `json:"code"`
	Model       string        `json:"model"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Colors      []RelatedShoe `json:"colors"`
	Images      []string      `json:"images"`
	Pinterest   []string      `json:"pinterest"`
	Suggestion  []RelatedShoe `json:"suggestion"`
}

// Detail resolves one shoe by the lookup's first non-empty key and assembles
// its composed view from the images, pinterest and suggestion collections.
func (a *Aggregator) Detail(ctx context.Context, lookup Lookup) (ShoeDetail, error) {
	filter, err := lookup.Filter()
	if err != nil {
		return ShoeDetail{}, err
	}

	var shoe models.Shoe
	if err := a.store.FindOne(ctx, shoesCollection, filter, &shoe); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"collection": shoesCollection, "filter": filter}).
				WithError(err).Error("shoe lookup failed")
		}
		return ShoeDetail{}, err
	}

	detail := ShoeDetail{
		ID:          shoe.ID.Hex(),
		Code:        shoe.Code,
		Model:       shoe.Model,
		Title:       shoe.Title,
		Description: shoe.Description,
		Colors:      make([]RelatedShoe, 0),
		Images:      a.imageLinks(ctx, shoe),
		Pinterest:   a.pinterestLinks(ctx, shoe),
		Suggestion:  make([]RelatedShoe, 0),
	}

	for _, colorID := range shoe.Colors {
		variant, ok := a.relatedShoe(ctx, colorID, 1)
		if ok {
			detail.Colors = append(detail.Colors, variant)
		}
	}

	var suggestion models.Suggestion
	err = a.store.FindOne(ctx, suggestionCollection, bson.M{"shoeId": shoe.ID}, &suggestion)
	if err == nil {
		for _, suggestedID := range suggestion.Shoes {
			suggested, ok := a.relatedShoe(ctx, suggestedID, 0)
			if ok {
				detail.Suggestion = append(detail.Suggestion, suggested)
			}
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithField("shoeId", shoe.ID.Hex()).WithError(err).Warn("suggestion lookup failed")
	}

	return detail, nil
}

// imageLinks flattens every image set recorded for the shoe, in document
// order. No sets means an empty list, never an error.
func (a *Aggregator) imageLinks(ctx context.Context, shoe models.Shoe) []string {
	var sets []models.ImageSet
	if err := a.store.FindAll(ctx, imagesCollection, bson.M{"shoeId": shoe.ID}, &sets); err != nil {
		logrus.WithField("shoeId", shoe.ID.Hex()).WithError(err).Warn("image lookup failed")
		return []string{}
	}

	links := make([]string, 0)
	for _, set := range sets {
		links = append(links, set.Links...)
	}
	return links
}

func (a *Aggregator) pinterestLinks(ctx context.Context, shoe models.Shoe) []string {
	var docs []models.PinterestLinks
	if err := a.store.FindAll(ctx, pinterestCollection, pinterestFilter(shoe.ID), &docs); err != nil {
		logrus.WithField("shoeId", shoe.ID.Hex()).WithError(err).Warn("pinterest lookup failed")
		return []string{}
	}

	links := make([]string, 0)
	for _, doc := range docs {
		links = append(links, doc.Links...)
	}
	return links
}

// relatedShoe resolves a referenced shoe and its image at the given index.
// References to shoes that no longer exist, or whose image set is too short,
// are skipped rather than reported.
func (a *Aggregator) relatedShoe(ctx context.Context, shoeID primitive.ObjectID, imageIndex int) (RelatedShoe, bool) {
	var related models.Shoe
	if err := a.store.FindOne(ctx, shoesCollection, bson.M{"_id": shoeID}, &related); err != nil {
		return RelatedShoe{}, false
	}

	var set models.ImageSet
	if err := a.store.FindOne(ctx, imagesCollection, bson.M{"shoeId": related.ID}, &set); err != nil {
		return RelatedShoe{}, false
	}
	if len(set.Links) <= imageIndex {
		return RelatedShoe{}, false
	}

	return RelatedShoe{
		ShoeID: related.ID.Hex(),
		Image:  set.Links[imageIndex],
		Code:   related.Code,
		Model:  related.Model,
	}, true
}
