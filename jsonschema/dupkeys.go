package jsonschema

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// dupFrame tracks one open container while scanning tokens.
type dupFrame struct {
	object    bool
	keys      map[string]struct{}
	expectKey bool
	key       string
	index     int
}

// duplicateKeys lists the JSON Pointer of every repeated object key in data,
// in document order. Decoding keeps the last occurrence silently, so this
// runs as a separate token pass.
func duplicateKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var (
		stack []dupFrame
		dups  []string
	)
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.expectKey = true
		} else {
			top.index++
		}
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return dups, nil
		}
		if err != nil {
			return dups, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{object: true, keys: map[string]struct{}{}, expectKey: true})
			case '[':
				stack = append(stack, dupFrame{})
			default:
				stack = stack[:len(stack)-1]
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				top := &stack[n-1]
				if _, seen := top.keys[v]; seen {
					dups = append(dups, framePath(stack[:n-1])+"/"+escapePointer(v))
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.expectKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

// framePath renders the pointer of the innermost frame in stack.
func framePath(stack []dupFrame) string {
	var b []byte
	for _, f := range stack {
		b = append(b, '/')
		if f.object {
			b = append(b, escapePointer(f.key)...)
		} else {
			b = strconv.AppendInt(b, int64(f.index), 10)
		}
	}
	return string(b)
}
