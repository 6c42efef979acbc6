package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

func (c *cli) signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup EMAIL PASSWORD",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.session.Signup(cmd.Context(), args[0], args[1])
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.t("home.welcome"), u.Email)
			return nil
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login EMAIL PASSWORD",
		Short: "Sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.session.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %s\n", c.t("home.welcomeBack"), u.Email)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.explain(c.session.Logout(cmd.Context()))
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := c.user()
			if u == nil {
				return c.explain(services.ErrUnauthorized)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", c.t("profile.email"), u.Email, c.role(u))
			return nil
		},
	}
}

func (c *cli) role(u *domain.User) string {
	if u.IsAdmin {
		return c.t("admin.users.admin")
	}
	return c.t("admin.users.user")
}
