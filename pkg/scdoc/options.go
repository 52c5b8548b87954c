package scdoc

import "time"

// DefaultGenerator names the program in the generated header comment.
const DefaultGenerator = "goscdoc"

// dateLayout is the title macro date format (YYYY-MM-DD).
const dateLayout = time.DateOnly

// Options configures a conversion.
type Options struct {
	// Date stamps the title macro. The zero value means the current time.
	Date time.Time

	// Generator is written into the header comment. Empty means DefaultGenerator.
	Generator string
}

func (o Options) withDefaults() Options {
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	return o
}
