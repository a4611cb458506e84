// Package app drives one formatting run end to end: fetch the commit
// message, classify it, format it with the model, and amend/push unless
// running dry.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/seoyeonmun/commit-formatter/internal/config"
	"github.com/seoyeonmun/commit-formatter/internal/conventional"
	"github.com/seoyeonmun/commit-formatter/internal/git"
	"github.com/seoyeonmun/commit-formatter/internal/llm"
	"github.com/seoyeonmun/commit-formatter/internal/output"
)

// Identity the amended commit is attributed to.
const (
	CommitterName  = "github-actions[bot]"
	CommitterEmail = "github-actions[bot]@users.noreply.github.com"
)

// Formatter produces a Conventional Commits rendition of a message.
type Formatter interface {
	Format(ctx context.Context, req llm.Request) (string, error)
}

// Result reports what a run did.
type Result struct {
	Original  string
	Formatted string
	Modified  bool
}

// Runner holds the collaborators for a single run.
type Runner struct {
	Cfg       *config.Config
	Repo      git.Repository
	Formatter Formatter
	Outputs   *output.Writer
	Log       io.Writer
}

// Run executes the pipeline. Any error aborts the run before the commit is
// mutated; there is no partial-success state.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := r.Cfg.Validate(); err != nil {
		return Result{}, err
	}
	if r.Cfg.CommitSHA == "" {
		return Result{}, &config.MissingKeyError{Key: "GITHUB_SHA"}
	}

	original, err := r.Repo.CommitMessage(r.Cfg.CommitSHA)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(r.Log, "Original commit message: %s\n", original)
	if err := r.Outputs.Set("original-message", original); err != nil {
		return Result{}, err
	}

	if conventional.IsConventional(original) {
		fmt.Fprintln(r.Log, "Commit message already follows Conventional Commits. Skipping...")
		res := Result{Original: original, Formatted: original}
		return res, r.finish(res)
	}

	formatted, err := r.Formatter.Format(ctx, llm.Request{
		Message:      original,
		Model:        r.Cfg.Model,
		Language:     r.Cfg.Language,
		CustomPrompt: r.Cfg.CustomPrompt,
	})
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(r.Log, "Formatted commit message: %s\n", formatted)
	if !conventional.IsConventional(formatted) {
		fmt.Fprintf(r.Log, "Warning: formatted message still does not follow Conventional Commits: %s\n", formatted)
	}

	if formatted == original {
		fmt.Fprintln(r.Log, "No changes needed for the commit message.")
		res := Result{Original: original, Formatted: formatted}
		return res, r.finish(res)
	}

	if r.Cfg.DryRun {
		fmt.Fprintf(r.Log, "[DRY RUN] Would amend commit with: %s\n", formatted)
		res := Result{Original: original, Formatted: formatted}
		return res, r.finish(res)
	}

	if err := r.amendAndPush(formatted); err != nil {
		return Result{}, err
	}

	res := Result{Original: original, Formatted: formatted, Modified: true}
	return res, r.finish(res)
}

func (r *Runner) amendAndPush(message string) error {
	if err := r.Repo.SetIdentity(CommitterName, CommitterEmail); err != nil {
		return err
	}
	if err := r.Repo.Amend(message); err != nil {
		return err
	}
	fmt.Fprintln(r.Log, "Commit amended successfully.")

	if err := r.Repo.SetRemoteURL("origin", r.Cfg.RemoteURL()); err != nil {
		return err
	}

	branch := r.Cfg.Branch()
	if err := r.Repo.ForcePush("origin", branch); err != nil {
		return err
	}
	fmt.Fprintf(r.Log, "Force pushed to %s\n", branch)
	return nil
}

// finish emits the terminal outputs for the run.
func (r *Runner) finish(res Result) error {
	if err := r.Outputs.Set("formatted-message", res.Formatted); err != nil {
		return err
	}
	return r.Outputs.Set("was-modified", fmt.Sprintf("%t", res.Modified))
}
