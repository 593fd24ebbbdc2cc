package cli

import (
	"fmt"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/app"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/kimnamhyeong01/bookstore-service/pkg/validate"

	"github.com/spf13/cobra"
)

func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserAddCommand(rootOpts))
	return cmd
}

func newUserAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		req  model.CreateUserRequest
		role string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user that can log in with email and phone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = auth.Role(role)
			if err := validate.NewCustomValidator().Validate(req); err != nil {
				return err
			}
			cfg, err := rootOpts.config()
			if err != nil {
				return err
			}
			u, err := app.AddUser(cmd.Context(), cfg, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", u.Email, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "login phone")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleCustomer), "Admin or Customer")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}
