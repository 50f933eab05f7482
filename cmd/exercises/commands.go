package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"exercises/change"
	"exercises/internal/config"
	"exercises/io"
	"exercises/math"
	"exercises/say"
	"exercises/sequence"
	"exercises/strutil"
)

var errNoMatch = errors.New("no match")

type app struct {
	cfg    config.Config
	logger *log.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "exercises",
		Short:         "Small standalone exercises: change, powers, quaternions and more",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.changeCmd(),
		a.firstCmd(),
		a.powersCmd(),
		a.sayCmd(),
		a.linesCmd(),
		a.quatCmd(),
		a.gltfCmd(),
	)
	return root
}

func (a *app) changeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change <amount>",
		Short: "Make change in quarters, dimes, nickels and pennies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := change.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), counts)
			return nil
		},
		// Negative amounts must reach change.Parse rather than the flag parser.
		DisableFlagParsing: true,
	}
}

func (a *app) firstCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "first --prefix P words...",
		Short: "Print the first word with the given prefix, lower-cased",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.cfg.Language()
			if err != nil {
				return err
			}
			a.logger.Printf("matching prefix %q with locale %s", prefix, tag)
			word, ok := strutil.FirstThenLowerCaseIn(tag, args, func(s string) bool {
				return strings.HasPrefix(s, prefix)
			})
			if !ok {
				return errNoMatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix the word must start with")
	return cmd
}

func (a *app) powersCmd() *cobra.Command {
	base, limit := a.cfg.PowersBase, a.cfg.PowersLimit
	cmd := &cobra.Command{
		Use:   "powers",
		Short: "Print powers of a base up to a limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Printf("powers of %d up to %d", base, limit)
			for p := range sequence.Powers(base, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&base, "base", base, "base (EXERCISES_POWERS_BASE)")
	cmd.Flags().Int64Var(&limit, "limit", limit, "largest value to print (EXERCISES_POWERS_LIMIT)")
	return cmd
}

func (a *app) sayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "say words...",
		Short: "Join words into a sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), say.Say(args...).Phrase())
			return nil
		},
	}
}

func (a *app) linesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Count lines that are neither blank nor # comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Printf("counting lines in %q", args[0])
			n, err := io.MeaningfulLineCount(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) quatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quat <show|conj|norm|inverse|add|mul> a b c d [a b c d]",
		Short: "Quaternion arithmetic",
		Args:  cobra.RangeArgs(5, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, operands := args[0], args[1:]
			qs, err := parseQuaternions(operands)
			if err != nil {
				return err
			}

			binary := op == "add" || op == "mul"
			if (binary && len(qs) != 2) || (!binary && len(qs) != 1) {
				return fmt.Errorf("quat %s: wrong number of operands", op)
			}

			out := cmd.OutOrStdout()
			switch op {
			case "show":
				fmt.Fprintln(out, qs[0])
			case "conj":
				fmt.Fprintln(out, qs[0].Conjugate())
			case "norm":
				fmt.Fprintln(out, strconv.FormatFloat(qs[0].Norm(), 'g', -1, 64))
			case "inverse":
				fmt.Fprintln(out, qs[0].Inverse())
			case "add":
				fmt.Fprintln(out, qs[0].Add(qs[1]))
			case "mul":
				fmt.Fprintln(out, qs[0].Mul(qs[1]))
			default:
				return fmt.Errorf("quat: unknown operation %q", op)
			}
			return nil
		},
		// Coefficients such as -1 are operands, not shorthand flags.
		DisableFlagParsing: true,
	}
}

// parseQuaternions reads groups of four coefficients.
func parseQuaternions(args []string) ([]math.Quaternion, error) {
	if len(args)%4 != 0 {
		return nil, fmt.Errorf("quat: expected coefficients in groups of 4, got %d", len(args))
	}
	var qs []math.Quaternion
	for i := 0; i < len(args); i += 4 {
		var c [4]float64
		for j := range c {
			v, err := strconv.ParseFloat(args[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("quat: coefficient %q: %w", args[i+j], err)
			}
			c[j] = v
		}
		qs = append(qs, math.NewQuaternion(c[0], c[1], c[2], c[3]))
	}
	return qs, nil
}

func (a *app) gltfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gltf <file>",
		Short: "Print the rotation of every node in a glTF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rotations, err := io.LoadGLTFRotations(args[0])
			if err != nil {
				return err
			}
			a.logger.Printf("loaded %d nodes from %q", len(rotations), args[0])
			for _, nr := range rotations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", nr.Name, nr.Rotation)
			}
			return nil
		},
	}
}
