package bind

import (
	"net/http/httptest"
	"testing"

	perr "gadash/internal/platform/errors"
)

type window struct {
	Start string `query:"startDate" validate:"omitempty,len=10"`
}

type listQuery struct {
	window
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Exact  bool   `query:"exact"`
	Ignore string `query:"-"`
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		url   string
		want  listQuery
		code  perr.ErrorCode
		field string
	}{
		{name: "empty", url: "/"},
		{
			name: "all fields",
			url:  "/?startDate=2026-01-01&limit=25&exact=true&Ignore=x",
			want: listQuery{window: window{Start: "2026-01-01"}, Limit: 25, Exact: true},
		},
		{name: "bad int", url: "/?limit=abc", code: perr.ErrorCodeValidation, field: "limit"},
		{name: "bad bool", url: "/?exact=maybe", code: perr.ErrorCodeValidation, field: "exact"},
		{name: "above max", url: "/?limit=501", code: perr.ErrorCodeValidation, field: "limit"},
		{name: "embedded validated", url: "/?startDate=soon", code: perr.ErrorCodeValidation, field: "startDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseQuery[listQuery](httptest.NewRequest("GET", tc.url, nil))
			if tc.code != 0 {
				e, ok := perr.As(err)
				if !ok || e.Code() != tc.code || e.Field() != tc.field {
					t.Fatalf("want %v on %q, got %v", tc.code, tc.field, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestParseQuery_NonStruct(t *testing.T) {
	t.Parallel()

	if _, err := ParseQuery[int](httptest.NewRequest("GET", "/?x=1", nil)); err == nil {
		t.Fatal("expected error for non struct target")
	}
}
