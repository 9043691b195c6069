package main

import (
	"github.com/spf13/cobra"
)

// execCmd runs raw engine commands in sequence and stops at the first
// failure, surfacing the native return code.
var execCmd = &cobra.Command{
	Use:   "exec -c <command> [-c <command> ...]",
	Short: "Run raw engine commands in sequence",
	Example: `  matcalc exec \
    -c "use-module core" \
    -c "open-thermodyn-database mc_fe.tdb" \
    -c "select-element C" \
    -c "read-thermodyn-database"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commands, _ := cmd.Flags().GetStringArray("command")
		newLine, _ := cmd.Flags().GetBool("new-line")

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, c := range commands {
			if newLine {
				err = s.ExecuteCommandNewLine(c)
			} else {
				err = s.ExecuteCommand(c)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringArrayP("command", "c", nil, "engine command to execute (repeatable)")
	execCmd.Flags().Bool("new-line", false, "route commands through the fresh-input-line entry point")
	_ = execCmd.MarkFlagRequired("command")
}
