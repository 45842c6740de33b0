package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
	mdwlog "github.com/msto63/epochx/foundation/core/log"
	"github.com/msto63/epochx/foundation/utils/filetime"
)

func newFiletimeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "filetime",
		Short: "Convert between Windows FILETIME ticks and Unix seconds",
		Long: `FILETIME counts 100 ns ticks since 1601-01-01 00:00:00 UTC.
Values at or before the Unix epoch convert to 0.`,
	}
	c.AddCommand(newToUnixCmd(a))
	c.AddCommand(newFromUnixCmd(a))
	return c
}

func newToUnixCmd(a *app) *cobra.Command {
	var rfc3339, table bool

	c := &cobra.Command{
		Use:     "to-unix <ticks>...",
		Short:   "Convert FILETIME ticks to Unix seconds",
		Example: "  epochx filetime to-unix 133480314450000000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newResultWriter(cmd.OutOrStdout(), table, "Ticks", "Epoch")
			return a.runEach(out, args, func(in string) ([]string, error) {
				ticks, err := parseUnsigned(in, "ticks")
				if err != nil {
					return nil, err
				}
				secs := filetime.TicksToUnixSeconds(ticks)
				a.logger.Debug("filetime converted", mdwlog.Fields{"ticks": ticks, "epoch": secs})
				result := strconv.FormatInt(secs, 10)
				if rfc3339 {
					result = filetime.ToTime(ticks).Format(time.RFC3339)
				}
				if table {
					return []string{in, result}, nil
				}
				return []string{result}, nil
			})
		},
	}

	c.Flags().BoolVar(&rfc3339, "rfc3339", false, "print results as RFC 3339 UTC timestamps")
	c.Flags().BoolVar(&table, "table", false, "print inputs and results as a table")
	return c
}

func newFromUnixCmd(a *app) *cobra.Command {
	var rfc3339, table bool

	c := &cobra.Command{
		Use:   "from-unix <seconds>...",
		Short: "Convert Unix seconds to FILETIME ticks",
		Example: `  epochx filetime from-unix 1703518245
  epochx filetime from-unix --rfc3339 2023-12-25T15:30:45Z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newResultWriter(cmd.OutOrStdout(), table, "Input", "Ticks")
			return a.runEach(out, args, func(in string) ([]string, error) {
				var ticks int64
				if rfc3339 {
					t, err := time.Parse(time.RFC3339, in)
					if err != nil {
						return nil, mdwerror.Wrap(err, "invalid RFC 3339 timestamp").
							WithCode(mdwerror.CodeInvalidInput).
							WithOperation("cmd.fromUnix").
							WithDetail("input", in)
					}
					ticks = int64(filetime.FromTime(t))
				} else {
					secs, err := parseUnsigned(in, "seconds")
					if err != nil {
						return nil, err
					}
					ticks = filetime.UnixSecondsToTicks(secs)
				}
				a.logger.Debug("filetime converted", mdwlog.Fields{"input": in, "ticks": ticks})
				result := strconv.FormatInt(ticks, 10)
				if table {
					return []string{in, result}, nil
				}
				return []string{result}, nil
			})
		},
	}

	c.Flags().BoolVar(&rfc3339, "rfc3339", false, "read inputs as RFC 3339 timestamps")
	c.Flags().BoolVar(&table, "table", false, "print inputs and results as a table")
	return c
}

func parseUnsigned(in, what string) (uint64, error) {
	v, err := strconv.ParseUint(in, 10, 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid "+what).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parseUnsigned").
			WithDetail("input", in)
	}
	return v, nil
}
