package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fflow/fflow/assistant"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the FinanceFlow support assistant",
	Long: `Ask the support assistant a question. With a message argument a single
answer is printed; without one an interactive session starts. The assistant
must be enabled in the config file.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func newAssistantClient() (*assistant.Client, error) {
	if !cfg.Assistant.Enabled {
		return nil, fmt.Errorf("assistant is disabled, enable it in the config file")
	}

	opts := []assistant.Option{}
	if cfg.Assistant.SystemPrompt != "" {
		opts = append(opts, assistant.WithSystemPrompt(cfg.Assistant.SystemPrompt))
	}
	return assistant.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, logger, opts...)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ac, err := newAssistantClient()
	if err != nil {
		return err
	}

	// Single-shot mode
	if len(args) > 0 {
		question := strings.Join(args, " ")
		answer, err := ac.Chat(ctx, nil, question)
		if err != nil {
			return fmt.Errorf("assistant error: %w", err)
		}
		fmt.Println(answer)
		return nil
	}

	// Interactive mode
	fmt.Println("FinanceFlow assistant. Type 'exit' to quit.")
	var history []assistant.Message
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		answer, err := ac.Chat(ctx, history, question)
		if err != nil {
			logger.Error().Err(err).Msg("Assistant request failed")
			fmt.Println("The assistant is unavailable right now, try again later.")
			continue
		}

		fmt.Println(answer)
		history = append(history,
			assistant.Message{Role: assistant.RoleUser, Content: question},
			assistant.Message{Role: assistant.RoleAssistant, Content: answer},
		)
	}
}
