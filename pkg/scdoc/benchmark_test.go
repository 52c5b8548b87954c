package scdoc_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/goscdoc/pkg/scdoc"
)

// Benchmark conversion of the tool's own manual page.
func BenchmarkConvertManPage(b *testing.B) {
	content, err := os.ReadFile(filepath.Join("testdata", "golden", "goscdoc.1.scd"))
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	opts := scdoc.Options{Date: fixedDate}

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for range b.N {
		if err := scdoc.Convert(ctx, bytes.NewReader(content), io.Discard, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark a long document with nested regions and inline formatting.
func BenchmarkConvertLargeDocument(b *testing.B) {
	var doc strings.Builder
	doc.WriteString("bench(1)\n\n")
	for range 500 {
		doc.WriteString("# SECTION\n\nSome *bold* and _underlined_ text with a \\* literal.\n\n")
		doc.WriteString("\tIndented line.\n\t\tDeeper line.\n\tBack again.\n\n")
	}
	content := []byte(doc.String())

	ctx := context.Background()
	opts := scdoc.Options{Date: fixedDate}

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for range b.N {
		if err := scdoc.Convert(ctx, bytes.NewReader(content), io.Discard, opts); err != nil {
			b.Fatal(err)
		}
	}
}
