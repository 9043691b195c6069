package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	matcalc "github.com/matsci/matcalc-go/pkg/matcalc"
)

// locateCmd resolves the application directory and prints the library file
// that Open would load, without loading anything.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the mc_core library file that would be loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sessionConfig(cmd)
		if cfg.LibraryFile != "" {
			fmt.Println(cfg.LibraryFile)
			return nil
		}

		appDir := cfg.AppDir
		if appDir == "" {
			appDir = os.Getenv(matcalc.EnvAppDir)
		}
		if appDir == "" {
			appDir = "."
		}
		appDir, err := filepath.Abs(appDir)
		if err != nil {
			return err
		}

		path, err := matcalc.LocateCoreLibrary(appDir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
