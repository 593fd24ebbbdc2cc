package service

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// CreateBook inserts the book and its author and award links in one transaction.
func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.BookDetails, error) {
	if req.Price.IsNegative() {
		return model.BookDetails{}, errors.Wrap(errs.ErrInvalidArgument, "price must not be negative")
	}
	err := s.atomic(ctx, "CreateBook", func(repo repository.Repository) error {
		if err := repo.CreateBook(ctx, req.Book()); err != nil {
			return err
		}
		if err := repo.SetBookAuthors(ctx, req.ISBN, req.AuthorIDs); err != nil {
			return err
		}
		return repo.SetBookAwards(ctx, req.ISBN, req.AwardIDs)
	})
	if err != nil {
		return model.BookDetails{}, err
	}
	return s.GetBook(ctx, req.ISBN)
}

// UpdateBook rewrites the book row and replaces its links in one transaction.
func (s *Service) UpdateBook(ctx context.Context, isbn string, req model.BookRequest) (model.BookDetails, error) {
	if req.Price.IsNegative() {
		return model.BookDetails{}, errors.Wrap(errs.ErrInvalidArgument, "price must not be negative")
	}
	req.ISBN = isbn
	err := s.atomic(ctx, "UpdateBook", func(repo repository.Repository) error {
		if err := repo.UpdateBook(ctx, req.Book()); err != nil {
			return err
		}
		if err := repo.SetBookAuthors(ctx, isbn, req.AuthorIDs); err != nil {
			return err
		}
		return repo.SetBookAwards(ctx, isbn, req.AwardIDs)
	})
	if err != nil {
		return model.BookDetails{}, err
	}
	return s.GetBook(ctx, isbn)
}

func (s *Service) DeleteBook(ctx context.Context, isbn string) error {
	return s.atomic(ctx, "DeleteBook", func(repo repository.Repository) error {
		return repo.DeleteBook(ctx, isbn)
	})
}

func (s *Service) GetBook(ctx context.Context, isbn string) (model.BookDetails, error) {
	var (
		d  model.BookDetails
		eg errgroup.Group
	)
	eg.Go(func() (err error) {
		d.Book, err = s.repo.GetBook(ctx, isbn)
		return err
	})
	eg.Go(func() (err error) {
		d.Authors, err = s.repo.BookAuthors(ctx, isbn)
		return err
	})
	eg.Go(func() (err error) {
		d.Awards, err = s.repo.BookAwards(ctx, isbn)
		return err
	})
	eg.Go(func() (err error) {
		d.Stock, err = s.repo.TotalStock(ctx, isbn)
		return err
	})
	if err := eg.Wait(); err != nil {
		return model.BookDetails{}, storeErr(err, "GetBook")
	}
	return d, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	return books, storeErr(err, "ListBooks")
}

// SearchBooks looks the keyword up by title, award name or author name. Without
// an explicit kind all three lookups run concurrently and are merged by ISBN.
func (s *Service) SearchBooks(ctx context.Context, req model.SearchRequest) ([]model.BookStock, error) {
	if req.Kind != "" {
		books, err := s.repo.SearchBooks(ctx, req.Kind, req.Keyword)
		return books, storeErr(err, "SearchBooks")
	}

	kinds := []model.SearchKind{model.SearchByTitle, model.SearchByAuthor, model.SearchByAward}
	results := make([][]model.BookStock, len(kinds))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		eg.Go(func() (err error) {
			results[i], err = s.repo.SearchBooks(egCtx, kind, req.Keyword)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, storeErr(err, "SearchBooks")
	}

	seen := make(map[string]struct{})
	books := make([]model.BookStock, 0)
	for _, res := range results {
		for _, b := range res {
			if _, ok := seen[b.ISBN]; ok {
				continue
			}
			seen[b.ISBN] = struct{}{}
			books = append(books, b)
		}
	}
	return books, nil
}

// SearchStock is the short title or category lookup used when picking a book to reserve.
func (s *Service) SearchStock(ctx context.Context, keyword string) ([]model.StockItem, error) {
	items, err := s.repo.SearchStock(ctx, keyword)
	return items, storeErr(err, "SearchStock")
}

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	a, err := s.repo.CreateAuthor(ctx, model.Author{Name: req.Name, Address: req.Address, URL: req.URL})
	return a, storeErr(err, "CreateAuthor")
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error) {
	a := model.Author{AuthorID: id, Name: req.Name, Address: req.Address, URL: req.URL}
	if err := s.repo.UpdateAuthor(ctx, a); err != nil {
		return model.Author{}, storeErr(err, "UpdateAuthor")
	}
	return a, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.atomic(ctx, "DeleteAuthor", func(repo repository.Repository) error {
		return repo.DeleteAuthor(ctx, id)
	})
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.ListAuthors(ctx)
	return authors, storeErr(err, "ListAuthors")
}

func (s *Service) CreateAward(ctx context.Context, req model.AwardRequest) (model.Award, error) {
	a, err := s.repo.CreateAward(ctx, model.Award{Name: req.Name, Year: req.Year})
	return a, storeErr(err, "CreateAward")
}

func (s *Service) UpdateAward(ctx context.Context, id int, req model.AwardRequest) (model.Award, error) {
	a := model.Award{AwardID: id, Name: req.Name, Year: req.Year}
	if err := s.repo.UpdateAward(ctx, a); err != nil {
		return model.Award{}, storeErr(err, "UpdateAward")
	}
	return a, nil
}

func (s *Service) DeleteAward(ctx context.Context, id int) error {
	return s.atomic(ctx, "DeleteAward", func(repo repository.Repository) error {
		return repo.DeleteAward(ctx, id)
	})
}

func (s *Service) ListAwards(ctx context.Context) ([]model.Award, error) {
	awards, err := s.repo.ListAwards(ctx)
	return awards, storeErr(err, "ListAwards")
}
