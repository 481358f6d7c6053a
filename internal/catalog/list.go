package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
)

// ShoeSummary is the list-view row: one shoe plus its cover image, the first
// link of its first matched image set.
type ShoeSummary struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Model      string `json:"model"`
	CoverImage string `json:"coverImage,omitempty"`
}

// TaggedShoe annotates a summary with the NFC tag addresses bound to it.
type TaggedShoe struct {
	ShoeSummary
	Tags []string `json:"tags"`
}

// ShoesWithImages lists every shoe in natural collection order with its
// cover image. Shoes without an image set are included with no cover.
func (a *Aggregator) ShoesWithImages(ctx context.Context) ([]ShoeSummary, error) {
	var shoes []models.Shoe
	if err := a.store.FindAll(ctx, shoesCollection, bson.M{}, &shoes); err != nil {
		return nil, err
	}

	summaries := make([]ShoeSummary, 0, len(shoes))
	for _, shoe := range shoes {
		summaries = append(summaries, a.summarize(ctx, shoe))
	}
	return summaries, nil
}

// ShoesWithTags lists shoes with their tag addresses. hasTag filters the
// result: true keeps only tagged shoes, false only untagged ones, nil keeps
// everything. Tag documents store shoeId as a string, so the join compares
// the hex transport form on both sides.
func (a *Aggregator) ShoesWithTags(ctx context.Context, hasTag *bool) ([]TaggedShoe, error) {
	var shoes []models.Shoe
	if err := a.store.FindAll(ctx, shoesCollection, bson.M{}, &shoes); err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := a.store.FindAll(ctx, tagCollection, bson.M{}, &tags); err != nil {
		return nil, err
	}

	tagsByShoe := make(map[string][]string)
	for _, tag := range tags {
		key := tag.ShoeID.String()
		tagsByShoe[key] = append(tagsByShoe[key], tag.TagAddress)
	}

	result := make([]TaggedShoe, 0, len(shoes))
	for _, shoe := range shoes {
		addresses := tagsByShoe[shoe.ID.Hex()]
		if hasTag != nil {
			if *hasTag && len(addresses) == 0 {
				continue
			}
			if !*hasTag && len(addresses) > 0 {
				continue
			}
		}
		if addresses == nil {
			addresses = []string{}
		}
		result = append(result, TaggedShoe{ShoeSummary: a.summarize(ctx, shoe), Tags: addresses})
	}
	return result, nil
}

func (a *Aggregator) summarize(ctx context.Context, shoe models.Shoe) ShoeSummary {
	summary := ShoeSummary{
		ID:    shoe.ID.Hex(),
		Code:  shoe.Code,
		Model: shoe.Model,
	}

	var sets []models.ImageSet
	if err := a.store.FindAll(ctx, imagesCollection, bson.M{"shoeId": shoe.ID}, &sets); err != nil {
		logrus.WithField("shoeId", shoe.ID.Hex()).WithError(err).Warn("cover image lookup failed")
		return summary
	}
	if len(sets) > 0 && len(sets[0].Links) > 0 {
		summary.CoverImage = sets[0].Links[0]
	}
	return summary
}
