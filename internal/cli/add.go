package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DehanLUO/modern-go-template/internal/calc"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <left> <right>",
		Short: "Print the sum of two integers",
		// negative operands would otherwise be parsed as shorthand flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			if len(args) != 2 {
				return fmt.Errorf("%w, got %d", ErrWrongArgCount, len(args))
			}

			left, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			right, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), calc.Add(left, right))
			return err
		},
	}
}

func parseOperand(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidOperand, s, err)
	}
	return v, nil
}
