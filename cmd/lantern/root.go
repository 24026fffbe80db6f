package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lanternhq/lantern/internal/version"
	"github.com/lanternhq/lantern/pkg/api"
	"github.com/lanternhq/lantern/pkg/auth"
	"github.com/lanternhq/lantern/pkg/cobrax/topics"
	"github.com/lanternhq/lantern/pkg/config"
	"github.com/lanternhq/lantern/pkg/deploy"
	"github.com/lanternhq/lantern/pkg/logging"
	"github.com/lanternhq/lantern/pkg/prompt"
	"github.com/lanternhq/lantern/pkg/style"
)

//go:embed topics/*.md
var topicFiles embed.FS

// newRootCmd creates and returns the root command
func newRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "lantern",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		rootCmd.AddCommand(topics.NewCommand(sub, MsgTopicsShort))
	}

	return rootCmd
}

func newDeployCmd() *cobra.Command {
	var (
		message  string
		buildDir string
		siteRoot string
	)

	cmd := &cobra.Command{
		Use:     "deploy",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := siteRoot
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf(MsgErrSiteRoot, err)
				}
				root = cwd
			}

			project, err := config.Load(root)
			if err != nil {
				return err
			}
			if buildDir != "" {
				project.Build = buildDir
			}

			prompter := prompt.NewTerminal()
			env := deploy.NewEnvironment(project, prompter, cmd.OutOrStdout())

			newAPI := func(credential api.Credential) deploy.API {
				return api.NewClient(api.Config{Origin: project.API.Origin}, credential)
			}

			result, err := deploy.Run(cmd.Context(), env, newAPI, deploy.Options{Message: message})
			if err != nil {
				return err
			}

			url := style.ProjectURL(result.Workspace, result.Slug)
			fmt.Fprintln(cmd.OutOrStdout(), style.DeploySummary(url, result.FileCount, prompter.Width()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", MsgFlagMessage)
	cmd.Flags().StringVar(&buildDir, "build", "", MsgFlagBuild)
	cmd.Flags().StringVar(&siteRoot, "root", "", MsgFlagRoot)

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: MsgWhoamiShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrSiteRoot, err)
			}

			project, err := config.Load(cwd)
			if err != nil {
				return err
			}

			credential, err := auth.Lookup(cwd)
			if err != nil {
				return err
			}

			client := api.NewClient(api.Config{Origin: project.API.Origin}, credential)
			user, err := client.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (credential from %s)\n",
				style.Bold(user.Login), credential.Source)
			if len(user.Workspaces) > 0 {
				logins := make([]string, len(user.Workspaces))
				for i, w := range user.Workspaces {
					logins[i] = "@" + w.Login
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Workspaces: %s\n", strings.Join(logins, ", "))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lantern version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
