package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gadash/internal/core/report"
	rt "gadash/internal/core/report/reporttest"
	"gadash/internal/platform/config"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/testkit"
)

func fakeConnect(f *rt.Fake) func(context.Context, config.Conf) (report.Client, func(), error) {
	return func(context.Context, config.Conf) (report.Client, func(), error) {
		return f, func() {}, nil
	}
}

func execute(t *testing.T, f *rt.Fake, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fakeConnect(f))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOverviewPrintsJSON(t *testing.T) {
	t.Parallel()

	f := rt.New().Reply(rt.Named("traffic.overview"), rt.Row(nil, "1840", "2100", "4850", "95.24", "0.425", "37"))
	out, err := execute(t, f, "overview", "--start", "7daysAgo")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if got["sessions"] != float64(2100) || got["bounceRate"] != 42.5 {
		t.Fatalf("overview = %v", got)
	}

	req, ok := f.Find("traffic.overview")
	if !ok {
		t.Fatalf("overview query not sent")
	}
	if req.DateRange.Start != "7daysAgo" || req.DateRange.End != report.Today {
		t.Fatalf("range = %+v", req.DateRange)
	}
}

func TestLimitReachesListDomains(t *testing.T) {
	t.Parallel()

	f := rt.New()
	if _, err := execute(t, f, "top-pages", "--limit", "3"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	req, ok := f.Find("traffic.topPages")
	if !ok || req.Limit != 3 {
		t.Fatalf("topPages request = %+v, found %v", req, ok)
	}
}

func TestEmptyListPrintsArray(t *testing.T) {
	t.Parallel()

	out, err := execute(t, rt.New(), "daily-trends")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	testkit.MustContain(t, out, "[]")
}

func TestRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		code perr.ErrorCode
	}{
		{"unknown domain", []string{"weather"}, perr.ErrorCodeInvalidArgument},
		{"bad start", []string{"seo", "--start", "last week"}, perr.ErrorCodeValidation},
		{"negative limit", []string{"top-pages", "--limit", "-1"}, perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := rt.New()
			_, err := execute(t, f, tc.args...)
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("err = %v, want code %v", err, tc.code)
			}
			if len(f.Calls()) != 0 {
				t.Fatalf("no query should run, got %d", len(f.Calls()))
			}
		})
	}
}

func TestRequiredFailureIsReturned(t *testing.T) {
	t.Parallel()

	f := rt.New().Fail(rt.Named("sessions.totals"), rt.AuthFailure("sessions.totals"))
	_, err := execute(t, f, "sessions")
	if err == nil || !report.IsAuth(err) {
		t.Fatalf("err = %v, want auth failure", err)
	}
}

func TestConnectErrorStopsRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("dial failed")
	cmd := newRootCmd(func(context.Context, config.Conf) (report.Client, func(), error) { return nil, nil, boom })
	cmd.SetArgs([]string{"audience"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestEveryDomainRuns(t *testing.T) {
	t.Parallel()

	for _, name := range domainNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := execute(t, rt.New(), name); err != nil {
				t.Fatalf("%s on an empty backend: %v", name, err)
			}
		})
	}
}
