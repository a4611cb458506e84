// Package git exposes the narrow set of repository operations the
// formatting pipeline needs.
package git

import (
	"github.com/seoyeonmun/commit-formatter/internal/gitcmd"
)

// Repository is what the pipeline needs from the local checkout. The CLI
// implementation shells out to git; tests substitute a fake.
type Repository interface {
	CommitMessage(sha string) (string, error)
	SetIdentity(name, email string) error
	Amend(message string) error
	SetRemoteURL(remote, url string) error
	ForcePush(remote, branch string) error
}

// CLI drives the local checkout through the git binary.
type CLI struct {
	Runner gitcmd.Runner
}

func NewCLI(verbose bool) *CLI {
	return &CLI{Runner: gitcmd.Runner{Verbose: verbose}}
}

// CommitMessage returns the full message (subject and body) of the commit
// identified by sha.
func (c *CLI) CommitMessage(sha string) (string, error) {
	result, err := c.Runner.RunLogged("log", "-1", "--format=%B", sha)
	if err != nil {
		return "", gitcmd.WrapError("failed to read commit message", result, err)
	}
	return result.StdoutString(true), nil
}

// SetIdentity sets the local author/committer identity used for the amend.
func (c *CLI) SetIdentity(name, email string) error {
	if result, err := c.Runner.RunLogged("config", "user.name", name); err != nil {
		return gitcmd.WrapError("failed to set user.name", result, err)
	}
	if result, err := c.Runner.RunLogged("config", "user.email", email); err != nil {
		return gitcmd.WrapError("failed to set user.email", result, err)
	}
	return nil
}

// Amend rewrites the most recent commit's message in place.
func (c *CLI) Amend(message string) error {
	if result, err := c.Runner.RunLogged("commit", "--amend", "-m", message); err != nil {
		return gitcmd.WrapError("failed to amend commit", result, err)
	}
	return nil
}

// SetRemoteURL repoints a remote. The URL embeds a short-lived credential,
// so this invocation is never echoed, even in verbose mode.
func (c *CLI) SetRemoteURL(remote, url string) error {
	if result, err := c.Runner.Run("remote", "set-url", remote, url); err != nil {
		return gitcmd.WrapError("failed to set remote URL", result, err)
	}
	return nil
}

// ForcePush overwrites the remote branch reference with local HEAD.
func (c *CLI) ForcePush(remote, branch string) error {
	if result, err := c.Runner.RunLogged("push", "--force", remote, "HEAD:"+branch); err != nil {
		return gitcmd.WrapError("failed to force push", result, err)
	}
	return nil
}
