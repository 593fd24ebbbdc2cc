package service

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
)

func (s *Service) TotalStock(ctx context.Context, isbn string) (int, error) {
	n, err := s.repo.TotalStock(ctx, isbn)
	return n, storeErr(err, "TotalStock")
}

func (s *Service) SetInventory(ctx context.Context, req model.InventoryRequest) (model.InventoryEntry, error) {
	e := model.InventoryEntry{WarehouseID: req.WarehouseID, ISBN: req.ISBN, Quantity: req.Quantity}
	if err := s.repo.UpsertInventory(ctx, e); err != nil {
		return model.InventoryEntry{}, storeErr(err, "SetInventory")
	}
	return e, nil
}

func (s *Service) DeleteInventory(ctx context.Context, warehouseID int, isbn string) error {
	return storeErr(s.repo.DeleteInventory(ctx, warehouseID, isbn), "DeleteInventory")
}

func (s *Service) ListInventory(ctx context.Context, isbn string) ([]model.InventoryEntry, error) {
	entries, err := s.repo.ListInventory(ctx, isbn)
	return entries, storeErr(err, "ListInventory")
}

func (s *Service) CreateWarehouse(ctx context.Context, req model.WarehouseRequest) (model.Warehouse, error) {
	w, err := s.repo.CreateWarehouse(ctx, model.Warehouse{Code: req.Code, Address: req.Address, Phone: req.Phone})
	return w, storeErr(err, "CreateWarehouse")
}

func (s *Service) DeleteWarehouse(ctx context.Context, id int) error {
	return s.atomic(ctx, "DeleteWarehouse", func(repo repository.Repository) error {
		return repo.DeleteWarehouse(ctx, id)
	})
}

func (s *Service) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	ws, err := s.repo.ListWarehouses(ctx)
	return ws, storeErr(err, "ListWarehouses")
}
