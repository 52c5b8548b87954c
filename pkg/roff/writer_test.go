package roff_test

import (
	"bytes"
	"errors"
	"testing"

	mroff "github.com/muesli/roff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goscdoc/pkg/roff"
)

func TestMacro(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		macro    string
		args     []string
		expected string
	}{
		{"no arguments", "P", nil, ".P\n"},
		{"single argument", "RS", []string{"4"}, ".RS 4\n"},
		{"title", "TH", []string{"foo", "1", "2024-01-02"}, ".TH foo 1 2024-01-02\n"},
		{"arguments are not quoted", "SH", []string{"SEE ALSO"}, ".SH SEE ALSO\n"},
		{"empty argument keeps separator", "SH", []string{""}, ".SH \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := roff.NewWriter(&buf)
			w.Macro(tt.macro, tt.args...)
			require.NoError(t, w.Flush())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestTextAndRune(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := roff.NewWriter(&buf)
	w.Text(roff.FontBold)
	w.Rune('☃')
	w.Text(roff.FontRegular)
	w.Rune('\n')
	require.NoError(t, w.Flush())

	assert.Equal(t, "\\fB☃\\fR\n", buf.String())
}

func TestFontEscapes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\fB`, roff.FontBold)
	assert.Equal(t, `\fI`, roff.FontItalic)
	assert.Equal(t, `\fR`, roff.FontRegular)
	assert.NotEqual(t, mroff.PreviousFont, roff.FontRegular)
	assert.Equal(t, `\&`, roff.ZeroWidth)
}

func TestPreamble(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := roff.NewWriter(&buf)
	w.Preamble("goscdoc 1.0.0")
	require.NoError(t, w.Flush())

	expected := `.\" Generated by goscdoc 1.0.0
.\" Fix weird quotation marks:
.\" http://bugs.debian.org/507673
.\" http://lists.gnu.org/archive/html/groff/2009-02/msg00013.html
.ie \n(.g .ds Aq \(aq
.el       .ds Aq '
.\" Disable hyphenation:
.nh
.\" Generated content:
`
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestWriteErrorIsSticky(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	w := roff.NewWriter(failingWriter{err: boom})

	w.Macro("P")
	// Nothing reaches the writer until the buffer is flushed.
	require.NoError(t, w.Err())

	err := w.Flush()
	require.ErrorIs(t, err, boom)

	w.Macro("P")
	w.Rune('x')
	assert.ErrorIs(t, w.Err(), boom)
	assert.ErrorIs(t, w.Flush(), boom)
}

func TestMacroStartsOnNewLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := roff.NewWriter(&buf)
	w.Text("unterminated")
	w.Macro("RE")
	w.Text("done\n")
	w.Macro("P")
	w.Rune('x')
	w.Comment("end")
	require.NoError(t, w.Flush())

	assert.Equal(t, "unterminated\n.RE\ndone\n.P\nx\n.\\\" end\n", buf.String())
}
