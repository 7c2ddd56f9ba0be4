package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fflow/fflow/config"
	"github.com/fflow/fflow/financeflow"
)

var (
	loginEmail       string
	registerCurrency string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the FinanceFlow backend",
	Long: `Authenticate with your FinanceFlow credentials. On success the session
token is stored in the config file and used by all other commands.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated account",
	RunE:  runWhoami,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new FinanceFlow account",
	RunE:  runRegister,
}

var verifyCmd = &cobra.Command{
	Use:   "verify [token]",
	Short: "Verify an email address",
	Long: `Verify an email address with the token from the verification mail.
With --resend, requests a fresh verification mail instead.`,
	RunE: runVerify,
}

var resendVerification bool

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email address")
	registerCmd.Flags().StringVar(&registerCurrency, "currency", "USD", "default currency for the new account")
	verifyCmd.Flags().BoolVar(&resendVerification, "resend", false, "resend the verification mail")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	email := loginEmail
	if email == "" {
		email = promptLine("Email: ")
	}
	password := promptLine("Password: ")
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	result, err := client.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := financeflow.AsAPIError(err); ok {
			return fmt.Errorf("login failed: %s", apiErr.Message)
		}
		return err
	}

	if err := config.SaveToken(cfgFile, result.Token); err != nil {
		logger.Warn().Err(err).Msg("Could not persist token to config file")
		fmt.Println("Warning: token could not be saved, it is only valid for this run")
	}

	fmt.Printf("Logged in as %s <%s>\n", result.User.Name, result.User.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if client.Token() == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := client.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	if err := config.SaveToken(cfgFile, ""); err != nil {
		logger.Warn().Err(err).Msg("Could not clear token in config file")
	}

	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, err := client.GetProfile(context.Background())
	if err != nil {
		if financeflow.IsUnauthorized(err) {
			return fmt.Errorf("session expired, run 'fflow login'")
		}
		return err
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("- Currency: %s\n", user.Currency)
	fmt.Printf("- Email verified: %v\n", user.EmailVerified)
	fmt.Printf("- Premium: %v\n", user.Premium)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	input := financeflow.RegisterInput{
		Name:     promptLine("Name: "),
		Email:    promptLine("Email: "),
		Password: promptLine("Password: "),
		Currency: registerCurrency,
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return fmt.Errorf("name, email and password are required")
	}

	user, err := client.Register(ctx, input)
	if err != nil {
		if apiErr, ok := financeflow.AsAPIError(err); ok {
			if len(apiErr.Fields) > 0 {
				for field, msg := range apiErr.Fields {
					fmt.Printf("  %s: %s\n", field, msg)
				}
			}
			return fmt.Errorf("registration failed: %s", apiErr.Message)
		}
		return err
	}

	fmt.Printf("Account created for %s. Check your inbox to verify the address.\n", user.Email)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if resendVerification {
		email := promptLine("Email: ")
		if err := client.ResendVerification(ctx, email); err != nil {
			return err
		}
		fmt.Println("Verification mail sent.")
		return nil
	}

	if len(args) < 1 {
		return fmt.Errorf("verification token required")
	}
	if err := client.VerifyEmail(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Email verified. You can log in now.")
	return nil
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
