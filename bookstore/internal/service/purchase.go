package service

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

type plannedLine struct {
	line  model.BasketLine
	stock model.InventoryEntry
}

// Purchase debits every line of the open basket from the warehouse holding the most
// copies. All lines are validated first and every shortfall is reported together;
// nothing is debited unless all lines can be served.
func (s *Service) Purchase(ctx context.Context, id auth.Identity, req model.PurchaseRequest) (model.PurchaseResult, error) {
	var res model.PurchaseResult
	err := s.atomic(ctx, "Purchase", func(repo repository.Repository) error {
		b, err := repo.OpenBasket(ctx, id.Email)
		if err != nil {
			return err
		}
		lines, err := repo.ListLines(ctx, b.BasketID)
		if err != nil {
			return err
		}

		plan := make([]plannedLine, 0, len(lines))
		var shortfall error
		for _, l := range lines {
			best, found, err := repo.BestWarehouse(ctx, l.ISBN)
			if err != nil {
				return err
			}
			if !found || best.Quantity < l.Number {
				shortfall = multierr.Append(shortfall, &errs.LineError{
					ISBN:      l.ISBN,
					Title:     l.Title,
					Requested: l.Number,
					Available: best.Quantity,
				})
				continue
			}
			plan = append(plan, plannedLine{line: l, stock: best})
		}
		if shortfall != nil {
			return shortfall
		}

		res = model.PurchaseResult{BasketID: b.BasketID, Lines: make([]model.PurchasedLine, 0, len(plan)), Total: decimal.Zero}
		for _, p := range plan {
			remaining := p.stock.Quantity - p.line.Number
			if err := repo.Adjust(ctx, p.stock.WarehouseID, p.line.ISBN, remaining); err != nil {
				return err
			}
			sub := p.line.Subtotal()
			res.Total = res.Total.Add(sub)
			res.Lines = append(res.Lines, model.PurchasedLine{
				ISBN:        p.line.ISBN,
				Title:       p.line.Title,
				Number:      p.line.Number,
				WarehouseID: p.stock.WarehouseID,
				Remaining:   remaining,
				Subtotal:    sub,
			})
		}

		if req.Finalize {
			if _, err := repo.Finalize(ctx, id.Email, s.today()); err != nil {
				return err
			}
			res.Finalized = true
		}
		return nil
	})
	if err != nil {
		return model.PurchaseResult{}, err
	}

	s.publish(ctx, model.EventPurchaseCompleted, id.Email, res)
	return res, nil
}
