// Command gadash-report prints one dashboard aggregate as JSON
//
//	gadash-report seo --start 7daysAgo --end today
//	gadash-report top-pages --limit 25
//
// it reads the same environment as gadash-api
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gadash/internal/adapters/analytics"
	"gadash/internal/core/pipeline"
	"gadash/internal/core/report"
	"gadash/internal/modkit"
	"gadash/internal/platform/config"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"

	"github.com/spf13/cobra"
)

type reportCmd struct {
	start string
	end   string
	limit int

	// connect opens the report client; swapped in tests
	connect func(ctx context.Context, root config.Conf) (report.Client, func(), error)
}

func newRootCmd(connect func(context.Context, config.Conf) (report.Client, func(), error)) *cobra.Command {
	rc := &reportCmd{connect: connect}
	cmd := &cobra.Command{
		Use:           "gadash-report <domain>",
		Short:         "Print a dashboard aggregate as JSON",
		Long:          "Domains: " + strings.Join(domainNames(), ", "),
		Args:          cobra.ExactArgs(1),
		ValidArgs:     domainNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          rc.run,
	}

	cmd.Flags().StringVar(&rc.start, "start", "", "start date, YYYY-MM-DD or NdaysAgo (default 30daysAgo, 730daysAgo for page-stats)")
	cmd.Flags().StringVar(&rc.end, "end", "", "end date, YYYY-MM-DD, today or yesterday (default today)")
	cmd.Flags().IntVar(&rc.limit, "limit", 0, "row limit for list domains")
	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, args []string) error {
	run, ok := domains[args[0]]
	if !ok {
		return perr.Newf(perr.ErrorCodeInvalidArgument, "unknown domain %q, want one of %s", args[0], strings.Join(domainNames(), ", "))
	}
	for _, d := range []string{rc.start, rc.end} {
		if d != "" && !report.ValidDate(d) {
			return perr.Newf(perr.ErrorCodeValidation, "invalid date %q", d)
		}
	}
	if rc.limit < 0 {
		return perr.Newf(perr.ErrorCodeValidation, "limit must not be negative")
	}

	ctx := cmd.Context()
	root := config.New()
	client, closeFn, err := rc.connect(ctx, root)
	if err != nil {
		return err
	}
	defer closeFn()

	deps := modkit.Deps{
		Log:     *logger.Get(),
		Cfg:     root,
		Reports: client,
		Runner:  pipeline.Runner{Timeout: root.MayDuration("REPORT_TIMEOUT", pipeline.DefaultTimeout)},
	}
	out, err := run(ctx, deps, query{
		rng:   report.DateRange{Start: rc.start, End: rc.end},
		limit: rc.limit,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func connectEnv(ctx context.Context, root config.Conf) (report.Client, func(), error) {
	st, c, err := analytics.Connect(ctx, root, "gadash-report", nil)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = st.Close(context.Background()) }, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(connectEnv).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gadash-report:", err)
		stop()
		os.Exit(1)
	}
}
