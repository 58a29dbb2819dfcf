// Package cli wires the homelink commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/homelink/internal/version"
	"github.com/arthur-debert/homelink/pkg/commands/discard"
	"github.com/arthur-debert/homelink/pkg/commands/install"
	"github.com/arthur-debert/homelink/pkg/commands/pull"
	"github.com/arthur-debert/homelink/pkg/commands/push"
	"github.com/arthur-debert/homelink/pkg/commands/repos"
	"github.com/arthur-debert/homelink/pkg/commands/update"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/ui/output"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		repoRoot  string
	)

	rootCmd := &cobra.Command{
		Use:   "homelink",
		Short: "A declarative home-directory symlink manager",
		Long: `homelink keeps a machine's dotfile symlinks in sync with a
version-controlled declaration. home.toml declares which files link
where; config.toml declares the machine's labels; install reconciles
the filesystem against the declaration, creating, keeping, overriding,
and removing symlinks idempotently.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			output.Init()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&repoRoot, "root", "", "Repository root (default: $HOMELINK_ROOT or the enclosing git worktree)")

	rootCmd.AddCommand(newInstallCmd(&repoRoot, &dryRun))
	rootCmd.AddCommand(newStatusCmd(&repoRoot))
	rootCmd.AddCommand(newPushCmd(&repoRoot, &dryRun))
	rootCmd.AddCommand(newPullCmd(&repoRoot, &dryRun))
	rootCmd.AddCommand(newDiscardCmd(&repoRoot, &dryRun))
	rootCmd.AddCommand(newUpdateCmd(&repoRoot, &dryRun))
	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newInstallCmd(repoRoot *string, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "install [groups...]",
		Short: "Reconcile symlinks with the manifest",
		Long: `Install parses home.toml, filters entries by the labels in
config.toml, and converges the filesystem: missing links are created,
stale links into the repository are overridden, links whose labels no
longer apply are removed. Links homelink does not own are never
touched.

With group arguments, only the named groups are installed and nothing
is removed.`,
		Example: `  # Reconcile everything
  homelink install

  # Preview without touching the filesystem
  homelink install --dry-run

  # Install a single group
  homelink install shell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := install.Install(install.Options{
				RepoRoot: *repoRoot,
				Groups:   args,
				DryRun:   *dryRun,
			})
			if err != nil {
				return err
			}
			renderInstall(cmd, result)
			return nil
		},
	}
}

func newStatusCmd(repoRoot *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status [groups...]",
		Short: "Show what install would do",
		Long:  `Status runs the full reconciliation decision procedure without mutating the filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := install.Install(install.Options{
				RepoRoot: *repoRoot,
				Groups:   args,
				DryRun:   true,
			})
			if err != nil {
				return err
			}
			renderInstall(cmd, result)
			return nil
		},
	}
}

func renderInstall(cmd *cobra.Command, result *install.Result) {
	out := cmd.OutOrStdout()
	output.RenderConflicts(out, result.Conflicts)
	output.RenderIssues(out, result.ParseIssues)
	output.RenderResults(out, result.Results)
}

func newPushCmd(repoRoot *string, dryRun *bool) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Commit and push all changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := push.Push(push.Options{
				RepoRoot: *repoRoot,
				DryRun:   *dryRun,
				Message:  message,
			})
			if err != nil {
				return err
			}
			if result.Pushed {
				fmt.Fprintf(cmd.OutOrStdout(), "Pushed: %s\n", result.Message)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes to commit")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	return cmd
}

func newPullCmd(repoRoot *string, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch and pull the latest changes",
		Long:  `Pull refuses to run when the worktree has uncommitted changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pull.Pull(pull.Options{RepoRoot: *repoRoot, DryRun: *dryRun}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Repository is up to date")
			return nil
		},
	}
}

func newDiscardCmd(repoRoot *string, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Discard all local changes and untracked files",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := discard.Discard(discard.Options{RepoRoot: *repoRoot, DryRun: *dryRun})
			if err != nil {
				return err
			}
			if result.Discarded {
				fmt.Fprint(cmd.OutOrStdout(), result.Status)
				fmt.Fprintln(cmd.OutOrStdout(), "Local changes discarded")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes to discard")
			}
			return nil
		},
	}
}

func newUpdateCmd(repoRoot *string, dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Pull changes and update development tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return update.Update(update.Options{RepoRoot: *repoRoot, DryRun: *dryRun})
		},
	}
}

func newReposCmd() *cobra.Command {
	var absolute bool
	cmd := &cobra.Command{
		Use:   "repos [dir]",
		Short: "List git repositories under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			found, err := repos.List(repos.Options{Dir: dir, Absolute: absolute})
			if err != nil {
				return err
			}
			for _, path := range found {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "Print absolute paths")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "homelink version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", version.Date)
			}
		},
	}
}
