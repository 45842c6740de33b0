package cmd

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		tz        string
		multiply  string
		showInput bool
		table     bool
	)

	c := &cobra.Command{
		Use:   "parse <datetime>...",
		Short: "Convert date/time literals to Unix epoch seconds",
		Long: `Converts each argument to seconds since 1970-01-01 00:00:00 UTC,
interpreted as wall clock time in the configured time zone.

With "-" as the only argument, one literal per line is read from stdin.
Out-of-range fields roll forward: 2023-13-01 is 2024-01-01.`,
		Example: `  epochx parse 2023-12-25
  epochx parse --tz UTC "2023-12-25 15:30:45"
  cat dates.txt | epochx parse -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *a.settings
			if tz != "" {
				s.General.Timezone = tz
			}
			if multiply != "" {
				s.General.Multiply = multiply
			}

			conv, err := s.Converter(a.logger)
			if err != nil {
				return err
			}

			inputs := args
			if len(args) == 1 && args[0] == "-" {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			out := newResultWriter(cmd.OutOrStdout(), table, "Input", "Epoch", "UTC")
			return a.runEach(out, inputs, func(in string) ([]string, error) {
				secs, err := conv.StringToEpoch(in)
				if err != nil {
					return nil, err
				}
				epoch := strconv.FormatInt(secs, 10)
				switch {
				case table:
					return []string{in, epoch, time.Unix(secs, 0).UTC().Format(time.RFC3339)}, nil
				case showInput:
					return []string{in, epoch}, nil
				default:
					return []string{epoch}, nil
				}
			})
		},
	}

	c.Flags().StringVar(&tz, "tz", "", "time zone (IANA name, Local or UTC), overrides general.timezone")
	c.Flags().StringVar(&multiply, "multiply", "", "multiply strategy (plain, shift, default), overrides general.multiply")
	c.Flags().BoolVarP(&showInput, "show-input", "i", false, "prefix each result with its input")
	c.Flags().BoolVar(&table, "table", false, "print input, epoch and UTC time as a table")

	return c
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.readLines")
	}
	return lines, nil
}
