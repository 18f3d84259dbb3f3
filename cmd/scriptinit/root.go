package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/scriptinit/internal/version"
	"github.com/arthur-debert/scriptinit/pkg/config"
	"github.com/arthur-debert/scriptinit/pkg/environment"
	"github.com/arthur-debert/scriptinit/pkg/executor"
	"github.com/arthur-debert/scriptinit/pkg/filesystem"
	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/scaffold"
	"github.com/arthur-debert/scriptinit/pkg/style"
	"github.com/arthur-debert/scriptinit/pkg/templates"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "scriptinit",
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
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newInitCmd() *cobra.Command {
	var scriptName string

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			settings, env, adapter, err := setup()
			if err != nil {
				return err
			}

			log.Info().
				Str("dir", dir).
				Str("install", env.InstallLocation()).
				Msg("Initializing folder")

			result, err := scaffold.InitFolder(scaffold.InitOptions{
				Dir:         dir,
				ScriptName:  scriptName,
				Settings:    settings,
				FileSystem:  filesystem.NewOS(),
				Console:     style.NewConsole(),
				Environment: env,
				Adapter:     adapter,
				Resolver:    templates.NewStore(),
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&scriptName, "script-name", "", MsgFlagScriptName)

	return cmd
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: MsgRegisterShort,
		Long:  MsgRegisterLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, adapter, err := setup()
			if err != nil {
				return err
			}
			scaffold.Register(adapter, style.NewConsole(), settings.Scaffold.ScriptExtension)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("scriptinit version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// setup loads configuration, probes the environment, and selects the
// platform adapter once for the invocation.
func setup() (*config.Settings, *environment.OSEnvironment, platform.Adapter, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	env, err := environment.New(settings.Tool.DefaultTFM, settings.SDK.RuntimeComponent)
	if err != nil {
		return nil, nil, nil, err
	}

	exePath := filepath.Join(env.InstallLocation(), settings.Tool.ExeName)
	adapter := platform.New(env.Family(), executor.NewOS(), settings.Scaffold.ScriptExtension, exePath)

	return settings, env, adapter, nil
}
