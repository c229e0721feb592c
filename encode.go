package zodgen

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/zodgen/internal/zod"
)

// encodeJSON renders v as compact JSON without HTML escaping, the form
// embedded into emitted code for literals, defaults, keys and descriptions.
func encodeJSON(w walk, facet string, v any) (zod.Raw, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		e := newError(KindEncodingFailed, w.path, facet, "")
		e.Cause = err
		return "", e
	}
	return zod.Raw(strings.TrimSuffix(buf.String(), "\n")), nil
}

// formatNumber renders f the way JavaScript's Number#toString does for the
// values JSON Schema can carry.
func formatNumber(w walk, facet string, f float64) (zod.Raw, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", newError(KindEncodingFailed, w.path, facet, "non-finite number "+strconv.FormatFloat(f, 'g', -1, 64))
	}
	if f == 0 {
		return "0", nil
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits; JS does not.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return zod.Raw(mant + "e" + sign + digits), nil
	}
	return zod.Raw(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func formatCount(n uint64) zod.Raw {
	return zod.Raw(strconv.FormatUint(n, 10))
}
