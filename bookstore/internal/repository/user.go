package repository

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

func (r *repository) CreateUser(ctx context.Context, u model.User) error {
	_, err := r.exec(ctx, r.qb.Insert(userTableName).
		Columns("email", "phone", "name", "role").
		Values(u.Email, u.Phone, u.Name, string(u.Role)))
	return errors.Wrap(err, "CreateUser")
}

func (r *repository) GetUser(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.get(ctx, &u, r.qb.Select("email", "phone", "name", "role").
		From(userTableName).
		Where(sq.Eq{"email": email}))
	return u, errors.Wrap(err, "GetUser")
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.selectAll(ctx, &users, r.qb.Select("email", "phone", "name", "role").
		From(userTableName).
		OrderBy("email"))
	return users, errors.Wrap(err, "ListUsers")
}
