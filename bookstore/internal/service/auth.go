package service

import (
	"context"
	"strings"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/pkg/errors"
)

// Login identifies a user by e-mail and phone number and issues a bearer token.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	u, err := s.repo.GetUser(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return model.LoginResponse{}, storeErr(err, "Login")
	}
	if u.Phone != strings.TrimSpace(req.Phone) {
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}

	now := s.now()
	token, exp, err := auth.Issue(s.auth, u.Identity(), now)
	if err != nil {
		return model.LoginResponse{}, err
	}
	return model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(exp.Sub(now).Seconds()),
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
	}, nil
}

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	if !req.Role.Valid() {
		return model.User{}, errors.Wrapf(errs.ErrInvalidArgument, "role %q", req.Role)
	}
	u := model.User{
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		Name:  req.Name,
		Role:  req.Role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return model.User{}, storeErr(err, "CreateUser")
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	return users, storeErr(err, "ListUsers")
}
