package rewrite_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/camelsnake/pkg/ident"
	"github.com/yaklabco/camelsnake/pkg/naming"
	"github.com/yaklabco/camelsnake/pkg/rewrite"
)

func lines(doc string) []string {
	return strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
}

func identifiers(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("var%c", 'A'+i)
	}
	return strings.Join(names, " + ") + ";"
}

func TestEngine_RewriteLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		mode      ident.Mode
		want      string
		wantCount int
	}{
		{
			name: "already snake case",
			line: "int foo_bar = baz_qux;",
			want: "int foo_bar = baz_qux;",
		},
		{
			name:      "declaration",
			line:      "int fooBar = otherValue;",
			want:      "int foo_bar = other_value;",
			wantCount: 2,
		},
		{
			name:      "function calls keep their names",
			line:      "doThing(fooBar, pBuffer);",
			want:      "doThing(foo_bar, buffer);",
			wantCount: 2,
		},
		{
			name:      "ternary",
			line:      "bool r = cond ? fooVal : barVal;",
			want:      "bool r = cond ? foo_val : bar_val;",
			wantCount: 2,
		},
		{
			name:      "function pointer",
			line:      "int (*funcPtr)(int, int) = &addInts;",
			want:      "int (*func_ptr)(int, int) = &add_ints;",
			wantCount: 2,
		},
		{
			name:      "suffixed call",
			line:      "  memberVar_(x),",
			want:      "  member_var_(x),",
			wantCount: 1,
		},
		{
			name:      "ctor init",
			line:      "Foo::Foo(int x) : memberVar(x), otherVal(0) {",
			mode:      ident.ModeCtorInit,
			want:      "Foo::Foo(int x) : member_var(x), other_val(0) {",
			wantCount: 2,
		},
		{
			name:      "member access",
			line:      "obj.bIsReady = this->msgCountNum;",
			want:      "obj.is_ready = this->message_count_number;",
			wantCount: 2,
		},
		{
			name:      "non-ascii prefix",
			line:      "// ünïcode fooBar",
			want:      "// ünïcode foo_bar",
			wantCount: 1,
		},
	}

	engine := rewrite.NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.RewriteLine(tt.line, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.wantCount, got.Count)
			assert.Equal(t, tt.line, got.Original)
			assert.Equal(t, tt.mode, got.Mode)
			assert.Len(t, got.Renames, tt.wantCount)
			assert.Equal(t, tt.wantCount > 0, got.Changed())
		})
	}
}

func TestEngine_RewriteLine_Renames(t *testing.T) {
	t.Parallel()

	got, err := rewrite.NewEngine(nil).RewriteLine("fooBar = mCount;", ident.ModeNormal)
	require.NoError(t, err)

	want := []rewrite.Rename{
		{Old: "fooBar", New: "foo_bar", Column: 0, Pattern: ident.PatternBare},
		{Old: "mCount", New: "count", Column: 10, Pattern: ident.PatternBare},
	}
	if diff := cmp.Diff(want, got.Renames); diff != "" {
		t.Errorf("renames mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_RewriteLine_IterationBound(t *testing.T) {
	t.Parallel()

	engine := rewrite.NewEngine(nil)

	got, err := engine.RewriteLine(identifiers(rewrite.MaxRewritesPerLine), ident.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, rewrite.MaxRewritesPerLine, got.Count)
	assert.True(t, strings.HasPrefix(got.Text, "var_a + var_b"))

	line := identifiers(rewrite.MaxRewritesPerLine + 1)
	_, err = engine.RewriteLine(line, ident.ModeNormal)
	require.Error(t, err)
	assert.ErrorIs(t, err, rewrite.ErrIterationBoundExceeded)

	var bound *rewrite.IterationBoundError
	require.ErrorAs(t, err, &bound)
	assert.Equal(t, line, bound.Line)
	assert.Equal(t, rewrite.MaxRewritesPerLine, bound.Limit)
}

func TestEngine_WithLimit(t *testing.T) {
	t.Parallel()

	engine := rewrite.NewEngine(nil, rewrite.WithLimit(2), rewrite.WithMatcher(ident.NewMatcher()))

	_, err := engine.RewriteLine(identifiers(2), ident.ModeNormal)
	require.NoError(t, err)

	_, err = engine.RewriteLine(identifiers(3), ident.ModeNormal)
	assert.ErrorIs(t, err, rewrite.ErrIterationBoundExceeded)
}

func TestEngine_RewriteLine_Malformed(t *testing.T) {
	t.Parallel()

	_, err := rewrite.NewEngine(nil).RewriteLine("mX = 1;", ident.ModeNormal)
	assert.ErrorIs(t, err, naming.ErrMalformedIdentifier)

	rules := naming.DefaultRules()
	rules.ShortIdentifiers = naming.ShortKeep

	got, err := rewrite.NewEngine(rules).RewriteLine("mX = 1;", ident.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, "m_x = 1;", got.Text)
}

func TestTrackCtorInit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prev     rewrite.State
		line     string
		prevLine string
		want     rewrite.State
	}{
		{
			name: "same line initializer",
			line: "Foo::Foo(int x) : memberVar(x) {",
			want: rewrite.Inside,
		},
		{
			name:     "leading colon after signature",
			line:     "    : memberVar_(x) {",
			prevLine: "Foo::Foo(int x)",
			want:     rewrite.Inside,
		},
		{
			name:     "previous line trailing whitespace ignored",
			line:     "  : a(1)",
			prevLine: "Foo::Foo()   ",
			want:     rewrite.Inside,
		},
		{
			name: "first line has no previous line",
			line: "    : memberVar(x)",
		},
		{
			name:     "previous line does not end with paren",
			line:     "    : memberVar(x)",
			prevLine: "int x;",
		},
		{
			name:     "previous line is a ternary",
			line:     "    : otherVal;",
			prevLine: "int v = cond ? f(a)",
		},
		{
			name: "ternary",
			line: "bool r = cond ? fooVal : barVal;",
		},
		{
			name: "ternary after call",
			line: "x = cond ? f(a) : g(b);",
		},
		{
			name: "label",
			line: "public: int fooBar;",
		},
		{
			name: "scope operator only",
			line: "Foo::Foo(int x)",
		},
		{
			name: "state carries over",
			prev: rewrite.Inside,
			line: "      otherVal(0),",
			want: rewrite.Inside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewrite.TrackCtorInit(tt.prev, tt.line, tt.prevLine)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeaveCtorInit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rewrite.Outside, rewrite.LeaveCtorInit(rewrite.Inside, "      otherVal(0) {"))
	assert.Equal(t, rewrite.Inside, rewrite.LeaveCtorInit(rewrite.Inside, "      otherVal(0),"))
	assert.Equal(t, rewrite.Outside, rewrite.LeaveCtorInit(rewrite.Outside, "if (x) {"))
	assert.Equal(t, rewrite.Inside, rewrite.LeaveCtorInit(rewrite.Inside, "{"), "brace needs a leading space")
}

func TestState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ident.ModeNormal, rewrite.Outside.Mode())
	assert.Equal(t, ident.ModeCtorInit, rewrite.Inside.Mode())
	assert.Equal(t, "outside", rewrite.Outside.String())
	assert.Equal(t, "inside", rewrite.Inside.String())
}

func TestEngine_RewriteLines_CtorInitList(t *testing.T) {
	t.Parallel()

	input := lines(heredoc.Doc(`
		Foo::Foo(int x)
		    : memberVar_(x) {
		  doThing(memberVar_);
		}
	`))

	got, err := rewrite.NewEngine(nil).RewriteLines(input)
	require.NoError(t, err)

	want := []string{
		"Foo::Foo(int x)",
		"    : member_var_(x) {",
		"  doThing(member_var_);",
		"}",
	}
	if diff := cmp.Diff(want, got.Text()); diff != "" {
		t.Errorf("rewritten lines mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 2, got.Count)
	assert.Equal(t, ident.ModeNormal, got.Lines[0].Mode)
	assert.Equal(t, ident.ModeCtorInit, got.Lines[1].Mode)
	assert.Equal(t, ident.ModeNormal, got.Lines[2].Mode)
	assert.Equal(t, ident.PatternSuffixedCall, got.Lines[1].Renames[0].Pattern)
}

func TestEngine_RewriteLines_MultiLineInitializers(t *testing.T) {
	t.Parallel()

	input := lines(heredoc.Doc(`
		Widget::Widget(int fooBar)
		    : memberVar(fooBar),
		      otherVal(0) {
		  doThing(memberVar);
		}
	`))

	got, err := rewrite.NewEngine(nil).RewriteLines(input)
	require.NoError(t, err)

	// The first initializer follows ": " after indentation, which no
	// initializer grammar accepts, so only its argument is renamed.
	want := []string{
		"Widget::Widget(int foo_bar)",
		"    : memberVar(foo_bar),",
		"      other_val(0) {",
		"  doThing(member_var);",
		"}",
	}
	if diff := cmp.Diff(want, got.Text()); diff != "" {
		t.Errorf("rewritten lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, got.Count)
	assert.Len(t, got.Renames(), 4)
}

func TestEngine_RewriteLines_Ternary(t *testing.T) {
	t.Parallel()

	got, err := rewrite.NewEngine(nil).RewriteLines([]string{
		"bool r = cond ? fooVal : barVal;",
		"  callMe(x);",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bool r = cond ? foo_val : bar_val;", "  callMe(x);"}, got.Text())
	for _, line := range got.Lines {
		assert.Equal(t, ident.ModeNormal, line.Mode)
	}
}

func TestEngine_RewriteLines_Error(t *testing.T) {
	t.Parallel()

	_, err := rewrite.NewEngine(nil).RewriteLines([]string{"int fooBar;", "mX = 1;"})
	require.Error(t, err)
	assert.ErrorIs(t, err, naming.ErrMalformedIdentifier)

	var lineErr *rewrite.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	assert.Equal(t, "mX = 1;", lineErr.Text)
	assert.Contains(t, lineErr.Error(), "line 2:")

	lineErr.Path = "src/a.cc"
	assert.True(t, strings.HasPrefix(lineErr.Error(), "src/a.cc:2: "))
}

func TestEngine_RewriteLines_Empty(t *testing.T) {
	t.Parallel()

	got, err := rewrite.NewEngine(nil).RewriteLines(nil)
	require.NoError(t, err)
	assert.Zero(t, got.Count)
	assert.Empty(t, got.Text())
}
