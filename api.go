package zodgen

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/reoring/zodgen/internal/zod"
	"github.com/reoring/zodgen/ir"
	"github.com/reoring/zodgen/pretty"
)

// Formatter reformats emitted code for humans without changing its meaning.
// ext is a file extension hint such as "js" or ".ts".
type Formatter interface {
	Format(text, ext string) (string, error)
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for rule tracing. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
		}
	}
}

// WithFormatter replaces the formatter used by TranslatePretty and
// TranslateModule. Defaults to pretty.New(pretty.DefaultConfig()).
func WithFormatter(f Formatter) Option {
	return func(t *Translator) {
		if f != nil {
			t.fmt = f
		}
	}
}

// WithFileExtension sets the extension hint passed to the formatter.
func WithFileExtension(ext string) Option {
	return func(t *Translator) {
		if ext != "" {
			t.ext = ext
		}
	}
}

// Translator turns IR into Zod expressions. It holds only read-only state
// and is safe for concurrent use.
type Translator struct {
	cfg Config
	log *slog.Logger
	fmt Formatter
	ext string
}

// New validates cfg and returns a Translator.
func New(cfg Config, opts ...Option) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Translator{cfg: cfg.normalized(), log: slog.Default(), ext: "js"}
	for _, o := range opts {
		o(t)
	}
	if t.fmt == nil {
		f, err := pretty.New(pretty.DefaultConfig())
		if err != nil {
			return nil, err
		}
		t.fmt = f
	}
	return t, nil
}

// MustNew is like New but panics on an invalid Config.
func MustNew(cfg Config, opts ...Option) *Translator {
	t, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns the normalized configuration.
func (t *Translator) Config() Config { return t.cfg }

// Translate renders s as a single-line Zod expression.
func (t *Translator) Translate(s ir.Schema) (string, error) {
	return t.render(t.schema(walk{}, s))
}

// TranslatePretty translates s and passes the result through the formatter
// once. Formatter failures are reported as KindFormattingFailed.
func (t *Translator) TranslatePretty(s ir.Schema) (string, error) {
	text, err := t.Translate(s)
	if err != nil {
		return "", err
	}
	return t.format(text)
}

func (t *Translator) format(text string) (string, error) {
	out, err := t.fmt.Format(text, t.ext)
	if err != nil {
		e := newError(KindFormattingFailed, "", "", "")
		e.Cause = err
		return "", e
	}
	if strings.TrimSpace(out) == "" {
		return "", newError(KindFormattingFailed, "", "", "formatter returned no output")
	}
	return out, nil
}

// ---- Production rules (exported for direct use and testing) ----
//
// Each rule translates the given node as the root of a walk, so error paths
// are relative to it.

// TranslateObject dispatches a structured node: union, then literal, then
// declared type. A node with none of these is KindInvalidSchema.
func (t *Translator) TranslateObject(o *ir.Object) (string, error) {
	return t.render(t.object(walk{}, o))
}

// TranslateType applies the rule for one instance type to o.
func (t *Translator) TranslateType(tag ir.InstanceType, o *ir.Object) (string, error) {
	return t.render(t.instanceType(walk{}, tag, o))
}

// TranslateString applies the string rule to o. With Enum set it delegates
// to the enum rule.
func (t *Translator) TranslateString(o *ir.Object) (string, error) {
	return t.render(t.str(walk{}, o))
}

// TranslateNumber applies the number rule, or the integer rule when isInt.
func (t *Translator) TranslateNumber(isInt bool, o *ir.Object) (string, error) {
	return t.render(t.number(walk{}, isInt, o))
}

// TranslateArray applies the array/tuple rule to o's array facet; a nil
// facet is an array of z.never().
func (t *Translator) TranslateArray(o *ir.Object) (string, error) {
	return t.render(t.array(walk{}, o))
}

// TranslateObjectFacet applies the struct/record rule to o's object facet.
func (t *Translator) TranslateObjectFacet(o *ir.Object) (string, error) {
	return t.render(t.objectFacet(walk{}, o))
}

// TranslateEnum requires Enum set and o not a literal.
func (t *Translator) TranslateEnum(o *ir.Object) (string, error) {
	return t.render(t.enum(walk{}, o))
}

// TranslateLiteral requires Const set or exactly one Enum value.
func (t *Translator) TranslateLiteral(o *ir.Object) (string, error) {
	return t.render(t.literal(walk{}, o))
}

// TranslateUnion requires Subschemas set; only oneOf and anyOf translate.
func (t *Translator) TranslateUnion(o *ir.Object) (string, error) {
	return t.render(t.union(walk{}, o))
}

func (t *Translator) render(e *zod.Expr, err error) (string, error) {
	if err != nil {
		if ze, ok := AsError(err); ok {
			t.log.Debug("zodgen: translation failed", "path", ze.Path, "kind", string(ze.Kind), "facet", ze.Facet)
		}
		return "", err
	}
	if e == nil {
		return "", errors.New("zodgen: rule produced no expression")
	}
	return e.String(), nil
}

// ---- Walk state ----

// walk is the per-call position in the IR tree.
type walk struct {
	path  string // JSON Pointer
	depth int
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (w walk) at(segs ...string) walk {
	p := w.path
	for _, s := range segs {
		p += "/" + pointerEscaper.Replace(s)
	}
	return walk{path: p, depth: w.depth}
}
