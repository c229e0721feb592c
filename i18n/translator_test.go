package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages_DefaultAndJapanese(t *testing.T) {
	// default is en
	assert.Equal(t, "unsupported schema shape", T("unimplemented", nil))
	assert.Equal(t, "schema nesting too deep (max 3)", T("depth_exceeded", map[string]string{"limit": "max 3"}))

	SetLanguage("ja")
	defer SetLanguage("en")
	assert.Equal(t, "未対応のスキーマ形状です", T("unimplemented", nil))
}

func TestMessages_UnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetMessages(t *testing.T) {
	SetMessages(upper{})
	defer SetMessages(nil)
	assert.Equal(t, "X:invalid_schema", T("invalid_schema", nil))
}
