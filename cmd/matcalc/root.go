package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	matcalc "github.com/matsci/matcalc-go/pkg/matcalc"
	"github.com/matsci/matcalc-go/pkg/matcalc/logging"
)

var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "Command-line driver for the MatCalc thermodynamics engine",
	Long: `matcalc drives the proprietary MatCalc calculation engine (mc_core)
through its command interpreter: locate the vendor library, run raw engine
commands, or execute a YAML scenario sweeping temperature and composition.

The application directory is taken from --app-dir, the MATCALC_DIR
environment variable, or the current directory, in that order. A .env file
in the current directory is loaded if present.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional; a missing .env is not an error.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("app-dir", "", "MatCalc application directory (default: $MATCALC_DIR, then .)")
	rootCmd.PersistentFlags().String("library", "", "explicit path to the mc_core library file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress the engine's stdout chatter during native calls")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every forwarded command at debug level")
}

// sessionConfig builds a matcalc.Config from the persistent flags.
func sessionConfig(cmd *cobra.Command) matcalc.Config {
	appDir, _ := cmd.Flags().GetString("app-dir")
	library, _ := cmd.Flags().GetString("library")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := matcalc.Config{
		AppDir:               appDir,
		LibraryFile:          library,
		SuppressEngineOutput: quiet,
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		cfg.Logger = logging.New(slog.New(handler))
	}
	return cfg
}

// openSession opens and initializes a session per the persistent flags.
func openSession(cmd *cobra.Command) (*matcalc.Session, error) {
	s, err := matcalc.Open(sessionConfig(cmd))
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
