package cmd

import (
	"context"
	"fmt"

	"github.com/seoyeonmun/commit-formatter/internal/app"
	"github.com/seoyeonmun/commit-formatter/internal/config"
	"github.com/seoyeonmun/commit-formatter/internal/git"
	"github.com/seoyeonmun/commit-formatter/internal/llm"
	"github.com/seoyeonmun/commit-formatter/internal/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	dryRun    bool
	verbose   bool
	configErr error

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "commit-formatter",
		Short: "commit-formatter - Conventional Commits for your latest commit",
		Long: `commit-formatter rewrites a commit message into the Conventional Commits ` +
			`format using a hosted language model, then amends the commit and force-pushes ` +
			`it. It is designed to run as a one-shot step in CI.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runPipeline(cmd.Context())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext sets the context commands run under.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.commit-formatter.yaml)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Report the formatted message without amending or pushing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show each git command as it runs")
}

func initConfig() {
	configErr = config.Init(cfgFile)
}

func runPipeline(ctx context.Context) error {
	cfg := config.Get()
	if dryRun {
		cfg.DryRun = true
	}

	formatter, err := llm.NewClient(llm.Options{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.APIBase,
		Template: cfg.PromptTemplate,
	})
	if err != nil {
		return err
	}

	runner := &app.Runner{
		Cfg:       cfg,
		Repo:      git.NewCLI(verbose),
		Formatter: formatter,
		Outputs:   output.New(cfg.OutputPath),
		Log:       outWriter(),
	}

	_, err = runner.Run(ctx)
	return err
}
