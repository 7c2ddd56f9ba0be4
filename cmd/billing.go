package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fflow/fflow/financeflow"
)

var (
	checkoutPlan       string
	feedbackSubject    string
	feedbackMessage    string
	feedbackAttachment string
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Manage the premium subscription",
}

var billingCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Start a premium checkout session",
	Long: `Create a hosted checkout session for the premium subscription and print
its URL. Open the URL in a browser to complete payment.`,
	RunE: runBillingCheckout,
}

var billingPortalCmd = &cobra.Command{
	Use:   "portal",
	Short: "Open the subscription management portal",
	RunE:  runBillingPortal,
}

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported currencies",
	RunE:  runCurrencies,
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Send feedback to the FinanceFlow team",
	RunE:  runFeedback,
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback you have submitted",
	RunE:  runFeedbackList,
}

func init() {
	billingCheckoutCmd.Flags().StringVar(&checkoutPlan, "plan", "monthly", "subscription plan (monthly or yearly)")

	feedbackCmd.Flags().StringVarP(&feedbackSubject, "subject", "s", "", "feedback subject")
	feedbackCmd.Flags().StringVarP(&feedbackMessage, "message", "m", "", "feedback message")
	feedbackCmd.Flags().StringVar(&feedbackAttachment, "attach", "", "path to a screenshot or file to attach")

	billingCmd.AddCommand(billingCheckoutCmd)
	billingCmd.AddCommand(billingPortalCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(currenciesCmd)
	rootCmd.AddCommand(feedbackCmd)
}

func runBillingCheckout(cmd *cobra.Command, args []string) error {
	session, err := client.CreateCheckoutSession(context.Background(), checkoutPlan)
	if err != nil {
		return fmt.Errorf("failed to create checkout session: %w", err)
	}

	fmt.Println("Open this URL to complete the subscription:")
	fmt.Println(session.URL)
	return nil
}

func runBillingPortal(cmd *cobra.Command, args []string) error {
	session, err := client.CreatePortalSession(context.Background())
	if err != nil {
		if financeflow.IsNotFound(err) {
			return fmt.Errorf("no active subscription, start one with 'fflow billing checkout'")
		}
		return fmt.Errorf("failed to create portal session: %w", err)
	}

	fmt.Println("Open this URL to manage your subscription:")
	fmt.Println(session.URL)
	return nil
}

func runCurrencies(cmd *cobra.Command, args []string) error {
	currencies, err := client.ListCurrencies(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch currencies: %w", err)
	}

	for _, c := range currencies {
		fmt.Printf("%-5s %-3s %s\n", c.Code, c.Symbol, c.Name)
	}
	return nil
}

func runFeedback(cmd *cobra.Command, args []string) error {
	if feedbackSubject == "" || feedbackMessage == "" {
		return fmt.Errorf("--subject and --message are required")
	}

	input := financeflow.FeedbackInput{
		Subject: feedbackSubject,
		Message: feedbackMessage,
	}

	if feedbackAttachment != "" {
		f, err := os.Open(feedbackAttachment)
		if err != nil {
			return fmt.Errorf("cannot read attachment: %w", err)
		}
		defer f.Close()
		input.AttachmentName = filepath.Base(feedbackAttachment)
		input.Attachment = f
	}

	feedback, err := client.CreateFeedback(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to submit feedback: %w", err)
	}

	fmt.Printf("Thanks! Feedback recorded (id=%s)\n", feedback.ID)
	return nil
}

func runFeedbackList(cmd *cobra.Command, args []string) error {
	entries, err := client.ListFeedback(context.Background())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No feedback submitted yet.")
		return nil
	}

	for _, f := range entries {
		fmt.Printf("%s  %s\n", f.CreatedAt.Format("2006-01-02"), f.Subject)
	}
	return nil
}
