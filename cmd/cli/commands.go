package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(callbackCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Print the identity provider's login URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/auth/login"); err != nil {
			return err
		}
		fmt.Println("Open the following URL in a browser to authenticate:")
		fmt.Println(app.sess.LoginURL())
		fmt.Println()
		fmt.Println("Then run: brackup callback <token>")
		return nil
	},
}

var callbackCmd = &cobra.Command{
	Use:   "callback <token>",
	Short: "Complete authentication with the token from the provider callback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/auth/success"); err != nil {
			return err
		}
		if err := app.sess.HandleCallback(cmd.Context(), args[0]); err != nil {
			return err
		}
		if user := app.sess.CurrentUser(); user != nil {
			fmt.Printf("Logged in as %s (%s)\n", user.DiscordUsername, user.Role)
			return nil
		}
		return fmt.Errorf("token was rejected by the server")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.sess.Logout(cmd.Context())
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := navigate(cmd, "/profile"); err != nil {
			return err
		}
		user := app.sess.CurrentUser()
		fmt.Printf("%s  role=%s  id=%s\n", user.DiscordUsername, user.Role, user.ID)
		if user.Email != nil {
			fmt.Printf("email: %s\n", *user.Email)
		}
		return nil
	},
}
