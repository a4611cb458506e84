// Package config assembles the run configuration from the process
// environment and an optional config file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything a single run needs. It is built once at startup
// and passed into the pipeline explicitly.
type Config struct {
	APIKey         string
	APIBase        string
	Model          string
	PromptTemplate string
	GitHubToken    string
	DryRun         bool
	Language       string
	CustomPrompt   string
	CommitSHA      string
	Ref            string
	Repository     string
	OutputPath     string
}

const (
	DefaultModel      = "meta-llama/llama-3-8b-instruct"
	DefaultAPIBase    = "https://openrouter.ai/api/v1"
	DefaultLanguage   = "en"
	DefaultConfigName = ".commit-formatter"
)

// envBindings maps config keys to the environment variables of the action's
// CI contract.
var envBindings = map[string]string{
	"api_key":         "OPENROUTER_API_KEY",
	"api_base":        "API_BASE",
	"model":           "MODEL",
	"prompt_template": "PROMPT_TEMPLATE",
	"github_token":    "GITHUB_TOKEN",
	"dry_run":         "DRY_RUN",
	"language":        "LANGUAGE",
	"custom_prompt":   "CUSTOM_PROMPT",
	"commit_sha":      "GITHUB_SHA",
	"ref":             "GITHUB_REF",
	"repository":      "GITHUB_REPOSITORY",
	"output_path":     "GITHUB_OUTPUT",
}

// MissingKeyError reports a required configuration value that is absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("configuration error: %s is required", e.Key)
}

// Init wires viper: env bindings, defaults, and an optional yaml config
// file (for local use; CI configures everything through the environment).
func Init(cfgFile string) error {
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("api_base", DefaultAPIBase)
	viper.SetDefault("language", DefaultLanguage)
	viper.SetDefault("dry_run", false)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to find home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional when not named explicitly.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("unable to read config file: %w", err)
	}
	return nil
}

// Get builds a Config snapshot from the current viper state.
func Get() *Config {
	return &Config{
		APIKey:         viper.GetString("api_key"),
		APIBase:        viper.GetString("api_base"),
		Model:          viper.GetString("model"),
		PromptTemplate: viper.GetString("prompt_template"),
		GitHubToken:    viper.GetString("github_token"),
		DryRun:         viper.GetBool("dry_run"),
		Language:       viper.GetString("language"),
		CustomPrompt:   viper.GetString("custom_prompt"),
		CommitSHA:      viper.GetString("commit_sha"),
		Ref:            viper.GetString("ref"),
		Repository:     viper.GetString("repository"),
		OutputPath:     viper.GetString("output_path"),
	}
}

// Validate checks the credentials the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &MissingKeyError{Key: "OPENROUTER_API_KEY"}
	}
	if c.GitHubToken == "" {
		return &MissingKeyError{Key: "GITHUB_TOKEN"}
	}
	return nil
}

// Branch derives the push target from the symbolic ref.
func (c *Config) Branch() string {
	return strings.TrimPrefix(c.Ref, "refs/heads/")
}

// RemoteURL builds the authenticated push URL for the repository slug.
func (c *Config) RemoteURL() string {
	return fmt.Sprintf("https://x-access-token:%s@github.com/%s.git", c.GitHubToken, c.Repository)
}
