package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/stockroom/internal/forms"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a registered email and password",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account and sign in",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("name", "", "Display name")
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Account password (min 8 characters)")
	registerCmd.Flags().String("confirm", "", "Password confirmation")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("confirm")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	form := forms.LoginForm{
		Email:    mustString(cmd, "email"),
		Password: mustString(cmd, "password"),
	}
	if err := forms.ValidateStruct(form); err != nil {
		return err
	}

	mgr, err := newAuthManager()
	if err != nil {
		return err
	}
	state := mgr.Login(form.Email, form.Password)
	if !state.IsAuthenticated {
		return fmt.Errorf("%s", state.Error)
	}
	fmt.Printf("Logged in as %s <%s>\n", state.User.Name, state.User.Email)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	form := forms.RegisterForm{
		Name:            mustString(cmd, "name"),
		Email:           mustString(cmd, "email"),
		Password:        mustString(cmd, "password"),
		ConfirmPassword: mustString(cmd, "confirm"),
	}
	if err := forms.ValidateStruct(form); err != nil {
		return err
	}

	mgr, err := newAuthManager()
	if err != nil {
		return err
	}
	state := mgr.Register(form.Name, form.Email, form.Password, form.ConfirmPassword)
	if !state.IsAuthenticated {
		return fmt.Errorf("%s", state.Error)
	}
	fmt.Printf("Registered and logged in as %s <%s>\n", state.User.Name, state.User.Email)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	mgr, err := newAuthManager()
	if err != nil {
		return err
	}
	mgr.Logout()
	fmt.Println("Logged out")
	return nil
}

func runWhoami(_ *cobra.Command, _ []string) error {
	mgr, err := newAuthManager()
	if err != nil {
		return err
	}
	state := mgr.State()
	if !state.IsAuthenticated {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (since %s)\n", state.User.Name, state.User.Email, state.User.CreatedAt.Format("2006-01-02"))
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
