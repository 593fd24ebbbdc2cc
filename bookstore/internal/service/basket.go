package service

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AddToBasket checks the requested quantity against the total stock of the book
// and adds it to the caller's open basket, creating the basket on first use.
func (s *Service) AddToBasket(ctx context.Context, id auth.Identity, req model.AddToBasketRequest) (model.Basket, error) {
	if req.Quantity <= 0 {
		return model.Basket{}, errors.Wrap(errs.ErrInvalidArgument, "quantity must be positive")
	}
	var basketID int
	err := s.atomic(ctx, "AddToBasket", func(repo repository.Repository) error {
		book, err := repo.GetBook(ctx, req.ISBN)
		if err != nil {
			return err
		}
		stock, err := repo.TotalStock(ctx, req.ISBN)
		if err != nil {
			return err
		}
		if stock < req.Quantity {
			return &errs.LineError{ISBN: book.ISBN, Title: book.Title, Requested: req.Quantity, Available: stock}
		}
		if basketID, err = repo.GetOrCreateBasket(ctx, id.Email); err != nil {
			return err
		}
		return repo.AddLine(ctx, basketID, req.ISBN, req.Quantity)
	})
	if err != nil {
		return model.Basket{}, err
	}
	s.publish(ctx, model.EventBasketLineAdded, id.Email, map[string]interface{}{
		"basketId": basketID, "isbn": req.ISBN, "quantity": req.Quantity,
	})
	return s.Basket(ctx, id)
}

// RemoveFromBasket deletes the line from the open basket. A missing line is not an error.
func (s *Service) RemoveFromBasket(ctx context.Context, id auth.Identity, isbn string) (model.Basket, error) {
	var removed bool
	err := s.atomic(ctx, "RemoveFromBasket", func(repo repository.Repository) error {
		b, err := repo.OpenBasket(ctx, id.Email)
		if err != nil {
			return err
		}
		removed, err = repo.RemoveLine(ctx, b.BasketID, isbn)
		return err
	})
	if err != nil {
		return model.Basket{}, err
	}
	if removed {
		s.publish(ctx, model.EventBasketLineRemoved, id.Email, map[string]interface{}{"isbn": isbn})
	}
	return s.Basket(ctx, id)
}

// Basket returns the caller's open basket with its lines and total.
func (s *Service) Basket(ctx context.Context, id auth.Identity) (model.Basket, error) {
	b, err := s.repo.OpenBasket(ctx, id.Email)
	if err != nil {
		return model.Basket{}, storeErr(err, "Basket")
	}
	if err := s.fillLines(ctx, s.repo, &b); err != nil {
		return model.Basket{}, storeErr(err, "Basket")
	}
	return b, nil
}

// FinalizeBasket stamps today's date on the open basket, turning it into order history.
func (s *Service) FinalizeBasket(ctx context.Context, id auth.Identity) (model.Basket, error) {
	day := s.today()
	basketID, err := s.repo.Finalize(ctx, id.Email, day)
	if err != nil {
		return model.Basket{}, storeErr(err, "FinalizeBasket")
	}
	s.publish(ctx, model.EventBasketFinalized, id.Email, map[string]interface{}{"basketId": basketID})

	b := model.Basket{BasketID: basketID, OrderDate: &day, UserEmail: id.Email}
	if err := s.fillLines(ctx, s.repo, &b); err != nil {
		return model.Basket{}, storeErr(err, "FinalizeBasket")
	}
	return b, nil
}

// PurchaseHistory lists the caller's finalized baskets, newest first.
func (s *Service) PurchaseHistory(ctx context.Context, id auth.Identity) ([]model.Basket, error) {
	baskets, err := s.repo.ClosedBaskets(ctx, id.Email)
	if err != nil {
		return nil, storeErr(err, "PurchaseHistory")
	}
	for i := range baskets {
		if err := s.fillLines(ctx, s.repo, &baskets[i]); err != nil {
			return nil, storeErr(err, "PurchaseHistory")
		}
	}
	return baskets, nil
}

func (s *Service) fillLines(ctx context.Context, repo repository.Repository, b *model.Basket) error {
	lines, err := repo.ListLines(ctx, b.BasketID)
	if err != nil {
		return err
	}
	b.Lines = lines
	b.Total = decimal.Zero
	for _, l := range lines {
		b.Total = b.Total.Add(l.Subtotal())
	}
	return nil
}

func (s *Service) AddContains(ctx context.Context, req model.ContainsRequest) error {
	return s.atomic(ctx, "AddContains", func(repo repository.Repository) error {
		return repo.AddLine(ctx, req.BasketID, req.ISBN, req.Number)
	})
}

func (s *Service) EditContains(ctx context.Context, req model.ContainsRequest) error {
	return s.atomic(ctx, "EditContains", func(repo repository.Repository) error {
		return repo.SetLine(ctx, req.BasketID, req.ISBN, req.Number)
	})
}

func (s *Service) DeleteContains(ctx context.Context, basketID int, isbn string) error {
	return s.atomic(ctx, "DeleteContains", func(repo repository.Repository) error {
		removed, err := repo.RemoveLine(ctx, basketID, isbn)
		if err != nil {
			return err
		}
		if !removed {
			return errs.ErrNotFound
		}
		return nil
	})
}

func (s *Service) ListContains(ctx context.Context) ([]model.Contains, error) {
	rows, err := s.repo.ListContains(ctx)
	return rows, storeErr(err, "ListContains")
}
