package catalog

import (
	"context"

	"backend/internal/models"
)

// PinterestView is the single-shoe pinterest-links projection.
type PinterestView struct {
	ID    string   `json:"id"`
	Code  string   `json:"code"`
	Model string   `json:"model"`
	Links []string `json:"pinterest_links"`
}

// Pinterest resolves one shoe and flattens its pinterest link documents.
func (a *Aggregator) Pinterest(ctx context.Context, lookup Lookup) (PinterestView, error) {
	filter, err := lookup.Filter()
	if err != nil {
		return PinterestView{}, err
	}

	var shoe models.Shoe
	if err := a.store.FindOne(ctx, shoesCollection, filter, &shoe); err != nil {
		return PinterestView{}, err
	}

	return PinterestView{
		ID:    shoe.ID.Hex(),
		Code:  shoe.Code,
		Model: shoe.Model,
		Links: a.pinterestLinks(ctx, shoe),
	}, nil
}
