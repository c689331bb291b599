package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestTypedErrorsUnwrap(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewDataSourceError("query failed", "trending_movies.sql", io.ErrUnexpectedEOF))

	if !IsDataSource(err) {
		t.Fatal("expected data source error in chain")
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("expected cause to be reachable")
	}
	if Code(err) != CodeDataSource {
		t.Fatalf("unexpected code %q", Code(err))
	}
	if !strings.Contains(err.Error(), "query failed: unexpected EOF") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKindsAreDistinct(t *testing.T) {
	cases := []struct {
		err  error
		code string
		is   func(error) bool
	}{
		{NewInvalidArgumentError("bad", "category", ""), CodeInvalidArgument, IsInvalidArgument},
		{NewResourceNotFoundError("sql", "x.sql", []string{"x.sql", "sql/x.sql"}), CodeResourceNotFound, IsResourceNotFound},
		{NewRenderError("boom", "website", "movies", nil), CodeRender, IsRender},
		{NewNotifyError([]string{"a"}, []error{io.EOF}), CodeNotify, IsNotify},
	}
	for _, tc := range cases {
		if Code(tc.err) != tc.code {
			t.Fatalf("%v: expected code %s, got %s", tc.err, tc.code, Code(tc.err))
		}
		if !tc.is(tc.err) {
			t.Fatalf("%v: kind check failed", tc.err)
		}
		if IsDataSource(tc.err) {
			t.Fatalf("%v: must not be a data source error", tc.err)
		}
	}
}

func TestResourceNotFoundListsCandidates(t *testing.T) {
	err := NewResourceNotFoundError("sql", "x.sql", []string{"x.sql", "sql/x.sql"})
	if !strings.Contains(err.Error(), "tried x.sql, sql/x.sql") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestNotifyErrorJoinsCauses(t *testing.T) {
	err := NewNotifyError([]string{"website", "json"}, []error{io.EOF, io.ErrClosedPipe})
	if !stderrors.Is(err, io.EOF) || !stderrors.Is(err, io.ErrClosedPipe) {
		t.Fatal("expected every cause to be reachable")
	}
	if len(err.Failed) != 2 {
		t.Fatalf("unexpected failed list %v", err.Failed)
	}
}

func TestCodeWithoutTypedError(t *testing.T) {
	if Code(io.EOF) != "" || Code(nil) != "" {
		t.Fatal("expected empty code")
	}
}

func TestConstructorsFillContextAndCause(t *testing.T) {
	err := NewHashStoreError("write failed", "save", "/tmp/hash", io.ErrShortWrite)
	if err.Code != CodeHashStore || err.Cause != io.ErrShortWrite {
		t.Fatalf("unexpected base error %+v", err.TrendsError)
	}
	if err.Context["operation"] != "save" || err.Context["location"] != "/tmp/hash" {
		t.Fatalf("unexpected context %v", err.Context)
	}

	base := NewTrendsError("plain", CodeRender, nil).WithCause(io.EOF)
	if !stderrors.Is(base, io.EOF) || base.Error() != "plain: EOF" {
		t.Fatalf("unexpected base error %v", base)
	}
}
