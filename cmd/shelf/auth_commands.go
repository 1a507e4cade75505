package main

import (
	"fmt"

	"bookclient/internal/auth"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			email := prompt(a.scanner, "Email: ")
			password, err := readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			token, err := a.identity.SignIn(cmd.Context(), auth.SignInForm{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := a.session.SetToken(token); err != nil {
				return err
			}

			user := a.session.User()
			fmt.Printf("Signed in as %s (%s)\n", user.Email, user.Role)
			fmt.Println("Export the token for later runs:")
			fmt.Printf("  export SHELF_TOKEN=%s\n", token)
			return nil
		},
	}
}

func newConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Submit the sign-up verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			email := prompt(a.scanner, "Email: ")
			code := prompt(a.scanner, "Verification code: ")

			if err := a.identity.ConfirmSignUp(cmd.Context(), auth.ConfirmSignUpForm{
				Email: email,
				Code:  code,
			}); err != nil {
				return err
			}

			fmt.Println("Account confirmed. You can sign in now.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the configured token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user := a.session.User()
			if user == nil {
				fmt.Println("Not signed in. Run 'shelf login' or set SHELF_TOKEN.")
				return nil
			}

			fmt.Printf("ID:    %s\n", user.ID)
			fmt.Printf("Email: %s\n", user.Email)
			if user.Name != "" {
				fmt.Printf("Name:  %s\n", user.Name)
			}
			fmt.Printf("Role:  %s\n", user.Role)
			return nil
		},
	}
}
