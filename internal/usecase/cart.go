package usecase

import (
	"context"

	"franguinho-pos/internal/domain/cart"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

// buildCart resolves request items into priced cart lines. Unit prices come
// from the product table, never from the client.
func buildCart(ctx context.Context, productRepo ProductRepository, storeID uuid.UUID, items []reqdto.CartItem) (cart.Cart, error) {
	if len(items) == 0 {
		return cart.Cart{}, errs.Mark(cart.ErrEmptyCart, ErrDomainValidationFailed)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, storeID, ids)
	if err != nil {
		return cart.Cart{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	priceByID := make(map[uuid.UUID]int64, len(products))
	activeByID := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.PriceCents
		activeByID[p.ID] = p.Active
	}

	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			return cart.Cart{}, ErrProductNotFound
		}
		if !activeByID[item.ProductID] {
			return cart.Cart{}, ErrProductInactive
		}
		lines = append(lines, cart.Line{
			ProductID:          item.ProductID,
			UnitPriceCents:     price,
			VariationCents:     item.VariationCents,
			Quantity:           item.Quantity,
			RedeemedWithPoints: item.RedeemedWithPoints,
		})
	}

	ct, err := cart.NewCart(lines)
	if err != nil {
		return cart.Cart{}, errs.Mark(err, ErrDomainValidationFailed)
	}
	return ct, nil
}
