package repository

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

func (r *repository) TotalStock(ctx context.Context, isbn string) (int, error) {
	var total int
	err := r.get(ctx, &total, r.qb.Select("COALESCE(SUM(quantity), 0)").
		From(inventoryTableName).
		Where(sq.Eq{"book_isbn": isbn}))
	return total, errors.Wrap(err, "TotalStock")
}

// BestWarehouse returns the inventory row holding the most copies of the book,
// preferring the lowest warehouse id on ties. Inside a transaction on PostgreSQL
// the row stays locked until commit.
func (r *repository) BestWarehouse(ctx context.Context, isbn string) (model.InventoryEntry, bool, error) {
	b := r.qb.Select("warehouse_warehouseid", "book_isbn", "quantity").
		From(inventoryTableName).
		Where(sq.Eq{"book_isbn": isbn}).
		OrderBy("quantity DESC", "warehouse_warehouseid ASC").
		Limit(1)
	if r.inTx && r.lockRows {
		b = b.Suffix("FOR UPDATE")
	}

	var e model.InventoryEntry
	if err := r.get(ctx, &e, b); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.InventoryEntry{}, false, nil
		}
		return model.InventoryEntry{}, false, errors.Wrap(err, "BestWarehouse")
	}
	return e, true, nil
}

func (r *repository) Adjust(ctx context.Context, warehouseID int, isbn string, quantity int) error {
	if quantity < 0 {
		return errors.Wrapf(errs.ErrInsufficientStock, "warehouse %d isbn %s: quantity %d", warehouseID, isbn, quantity)
	}
	err := r.execOne(ctx, r.qb.Update(inventoryTableName).
		Set("quantity", quantity).
		Where(sq.Eq{"warehouse_warehouseid": warehouseID, "book_isbn": isbn}))
	return errors.Wrap(err, "Adjust")
}

func (r *repository) UpsertInventory(ctx context.Context, e model.InventoryEntry) error {
	_, err := r.exec(ctx, r.qb.Insert(inventoryTableName).
		Columns("warehouse_warehouseid", "book_isbn", "quantity").
		Values(e.WarehouseID, e.ISBN, e.Quantity).
		Suffix("ON CONFLICT (warehouse_warehouseid, book_isbn) DO UPDATE SET quantity = excluded.quantity"))
	return errors.Wrap(err, "UpsertInventory")
}

func (r *repository) DeleteInventory(ctx context.Context, warehouseID int, isbn string) error {
	err := r.execOne(ctx, r.qb.Delete(inventoryTableName).
		Where(sq.Eq{"warehouse_warehouseid": warehouseID, "book_isbn": isbn}))
	return errors.Wrap(err, "DeleteInventory")
}

// ListInventory lists every entry, or only those of one book when isbn is set.
func (r *repository) ListInventory(ctx context.Context, isbn string) ([]model.InventoryEntry, error) {
	b := r.qb.Select("warehouse_warehouseid", "book_isbn", "quantity").
		From(inventoryTableName).
		OrderBy("book_isbn", "warehouse_warehouseid")
	if isbn != "" {
		b = b.Where(sq.Eq{"book_isbn": isbn})
	}
	entries := make([]model.InventoryEntry, 0)
	err := r.selectAll(ctx, &entries, b)
	return entries, errors.Wrap(err, "ListInventory")
}

func (r *repository) CreateWarehouse(ctx context.Context, w model.Warehouse) (model.Warehouse, error) {
	var out model.Warehouse
	err := r.get(ctx, &out, r.qb.Insert(warehouseTableName).
		Columns("code", "address", "phone").
		Values(w.Code, w.Address, w.Phone).
		Suffix("RETURNING warehouseid, code, address, phone"))
	return out, errors.Wrap(err, "CreateWarehouse")
}

func (r *repository) DeleteWarehouse(ctx context.Context, id int) error {
	if _, err := r.exec(ctx, r.qb.Delete(inventoryTableName).Where(sq.Eq{"warehouse_warehouseid": id})); err != nil {
		return errors.Wrap(err, "DeleteWarehouse: inventory")
	}
	err := r.execOne(ctx, r.qb.Delete(warehouseTableName).Where(sq.Eq{"warehouseid": id}))
	return errors.Wrap(err, "DeleteWarehouse")
}

func (r *repository) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	warehouses := make([]model.Warehouse, 0)
	err := r.selectAll(ctx, &warehouses, r.qb.Select("warehouseid", "code", "address", "phone").
		From(warehouseTableName).
		OrderBy("warehouseid"))
	return warehouses, errors.Wrap(err, "ListWarehouses")
}
