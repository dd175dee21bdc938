package cmd

import (
	"context"
	"fmt"
	"os"

	"resumatic/internal/app"
	"resumatic/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

// applyVerbosity sets the log level from the persistent --verbose flag.
func applyVerbosity(flags *pflag.FlagSet) {
	if on, err := flags.GetBool("verbose"); err == nil && on {
		log.SetLevel(log.DebugLevel)
	}
}

var rootCmd = &cobra.Command{
	Use:   "resumatic",
	Short: "Resumatic CLI",
	Long:  `Resumatic scores a resume against a fixed keyword set and rewrites it to inject missing keywords into its skills section.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		applyVerbosity(cmd.Flags())

		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance, err := GetAppFromContext(cmd.Context()); err == nil {
			appInstance.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// contextKey avoids collisions with other context values.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stashed by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check history store connectivity and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if appInstance.RunStore == nil {
			fmt.Println("Run history is disabled or unavailable.")
			return nil
		}
		if err := appInstance.RunStore.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("history store ping failed: %w", err)
		}
		fmt.Println("History store connection successful.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(doctorCmd)
}
