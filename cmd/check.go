package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/seoyeonmun/commit-formatter/internal/config"
	"github.com/seoyeonmun/commit-formatter/internal/conventional"
	"github.com/seoyeonmun/commit-formatter/internal/llm"
	"github.com/seoyeonmun/commit-formatter/internal/ui"
	"github.com/spf13/cobra"
)

var (
	checkLanguage string
	checkModel    string
	checkPrompt   string

	checkCmd = &cobra.Command{
		Use:   "check [message...]",
		Short: "Preview how a commit message would be formatted",
		Long: `check classifies the given message and, when it is not already in ` +
			`Conventional Commits form, asks the model for a formatted rewrite. ` +
			`Nothing is amended or pushed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runCheck(cmd.Context(), strings.Join(args, " "))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func init() {
	checkCmd.Flags().StringVarP(&checkLanguage, "language", "l", "",
		"Two-letter language code for the description")
	checkCmd.Flags().StringVarP(&checkModel, "model", "m", "",
		"Model identifier to use for this check")
	checkCmd.Flags().StringVarP(&checkPrompt, "prompt", "p", "",
		"Additional instructions passed to the model")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, message string) error {
	cfg := config.Get()
	if checkLanguage != "" {
		cfg.Language = checkLanguage
	}
	if checkModel != "" {
		cfg.Model = checkModel
	}
	if checkPrompt != "" {
		cfg.CustomPrompt = checkPrompt
	}

	fmt.Fprintf(outWriter(), "Original message: %s\n", message)

	if conventional.IsConventional(message) {
		fmt.Fprintln(outWriter(), "Message already follows Conventional Commits.")
		return nil
	}

	if cfg.APIKey == "" {
		return &config.MissingKeyError{Key: "OPENROUTER_API_KEY"}
	}

	client, err := llm.NewClient(llm.Options{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.APIBase,
		Template: cfg.PromptTemplate,
	})
	if err != nil {
		return err
	}

	sp := ui.NewSpinner(fmt.Sprintf("Formatting with %s...", cfg.Model))
	sp.Start()
	formatted, err := client.Format(ctx, llm.Request{
		Message:      message,
		Model:        cfg.Model,
		Language:     cfg.Language,
		CustomPrompt: cfg.CustomPrompt,
	})
	sp.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(outWriter(), "Formatted message: %s\n", formatted)
	if !conventional.IsConventional(formatted) {
		fmt.Fprintln(errWriter(), "Warning: formatted message still does not follow Conventional Commits.")
	}
	return nil
}
