// Package pretty formats generated Zod expressions.
//
// It understands the subset of JavaScript the translator emits: member
// chains, calls, new expressions, array and object literals, strings,
// numbers and identifiers. Output follows the usual prettier/dprint
// conventions: a node stays on one line when it fits, a trailing array or
// object argument hugs its call, and broken lists get trailing commas.
package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// QuoteProps controls quoting of object literal keys.
type QuoteProps string

const (
	// QuotePropsAsNeeded removes quotes from keys that are identifiers.
	QuotePropsAsNeeded QuoteProps = "as-needed"
	// QuotePropsPreserve keeps keys quoted or bare as written.
	QuotePropsPreserve QuoteProps = "preserve"
)

// Config is the style configuration. Zero numeric fields and an empty
// QuoteProps take their DefaultConfig values in New.
type Config struct {
	IndentWidth  int        `yaml:"indent_width" validate:"gte=0,lte=16"`
	LineWidth    int        `yaml:"line_width" validate:"gte=0,lte=1000"`
	UseTabs      bool       `yaml:"use_tabs"`
	SingleQuotes bool       `yaml:"single_quotes"`
	QuoteProps   QuoteProps `yaml:"quote_props" validate:"omitempty,oneof=as-needed preserve"`
	Semicolons   bool       `yaml:"semicolons"`
}

// DefaultConfig returns 2-space indentation, a 60 column line width, single
// quotes, as-needed key quoting and semicolons.
func DefaultConfig() Config {
	return Config{
		IndentWidth:  2,
		LineWidth:    60,
		SingleQuotes: true,
		QuoteProps:   QuotePropsAsNeeded,
		Semicolons:   true,
	}
}

var validate = validator.New()

// Formatter formats expression text. It is safe for concurrent use.
type Formatter struct {
	cfg Config
}

// New validates cfg and returns a Formatter.
func New(cfg Config) (*Formatter, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("pretty: invalid config: %w", err)
	}
	d := DefaultConfig()
	if cfg.IndentWidth == 0 {
		cfg.IndentWidth = d.IndentWidth
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = d.LineWidth
	}
	if cfg.QuoteProps == "" {
		cfg.QuoteProps = d.QuoteProps
	}
	return &Formatter{cfg: cfg}, nil
}

var extensions = map[string]bool{
	"js": true, "jsx": true, "mjs": true, "cjs": true,
	"ts": true, "tsx": true, "mts": true, "cts": true,
}

// ErrUnsupportedExtension is returned for file extensions that are not
// JavaScript or TypeScript.
var ErrUnsupportedExtension = errors.New("pretty: unsupported file extension")

// Format reformats a single expression, optionally terminated by a
// semicolon, and returns it as one statement ending in a newline.
func (f *Formatter) Format(text, ext string) (string, error) {
	if !extensions[strings.TrimPrefix(ext, ".")] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	toks, err := lex(text)
	if err != nil {
		return "", err
	}
	n, err := parse(toks)
	if err != nil {
		return "", err
	}
	p := &printer{cfg: f.cfg}
	out := p.layout(n, 0, 0, p.semiWidth())
	if f.cfg.Semicolons {
		out += ";"
	}
	return out + "\n", nil
}
