package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// runCmd executes a YAML scenario: setup, composition, then an equilibrium
// calculation at each temperature, reporting the requested variables as CSV
// on stdout.
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a scenario file and print variable values as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := LoadScenario(args[0])
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := sc.apply(s); err != nil {
			return err
		}

		w := csv.NewWriter(cmd.OutOrStdout())
		header := append([]string{"T_K"}, sc.Variables...)
		if err := w.Write(header); err != nil {
			return err
		}

		skipFailed, _ := cmd.Flags().GetBool("skip-failed")

		for _, kelvin := range sc.Temperatures.Values() {
			if err := s.SetTemperatureKelvin(kelvin); err != nil {
				return err
			}
			if err := s.CalcEquilibrium(); err != nil {
				if skipFailed {
					fmt.Fprintf(os.Stderr, "skipping T=%g K: %v\n", kelvin, err)
					continue
				}
				return err
			}

			row := make([]string, 0, len(sc.Variables)+1)
			row = append(row, strconv.FormatFloat(kelvin, 'g', -1, 64))
			for _, name := range sc.Variables {
				v, err := s.GetVariable(name)
				if err != nil {
					return err
				}
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}

		w.Flush()
		return w.Error()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("skip-failed", false, "skip temperatures where the equilibrium calculation fails")
}
