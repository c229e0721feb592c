// Package i18n provides localized messages for translation error kinds.
package i18n

// Messages retrieves localized messages for error kind codes.
// data provides optional values to embed in the message (for example,
// "facet" or "limit").
type Messages interface {
	Message(code string, data map[string]string) string
}

// dictMessages is the built-in dictionary-based Messages.
type dictMessages struct{ lang string }

func (t dictMessages) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_schema":
			msg = "スキーマが不正です"
		case "unimplemented":
			msg = "未対応のスキーマ形状です"
		case "precondition_violated":
			msg = "前提条件を満たさない呼び出しです"
		case "encoding_failed":
			msg = "JSON エンコードに失敗しました"
		case "formatting_failed":
			msg = "整形に失敗しました"
		case "depth_exceeded":
			msg = "ネストが深すぎます"
		}
	default: // "en"
		switch code {
		case "invalid_schema":
			msg = "invalid schema"
		case "unimplemented":
			msg = "unsupported schema shape"
		case "precondition_violated":
			msg = "rule called out of order"
		case "encoding_failed":
			msg = "JSON encoding failed"
		case "formatting_failed":
			msg = "formatting failed"
		case "depth_exceeded":
			msg = "schema nesting too deep"
		}
	}
	if msg == "" {
		return code
	}
	if limit := data["limit"]; limit != "" {
		msg += " (" + limit + ")"
	}
	return msg
}

var current Messages = dictMessages{lang: "en"}

// SetLanguage switches the built-in dictionary language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current = dictMessages{lang: lang}
}

// SetMessages replaces the Messages implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetMessages(m Messages) {
	if m == nil {
		current = dictMessages{lang: "en"}
		return
	}
	current = m
}

// T fetches a message for the given code using the current Messages.
func T(code string, data map[string]string) string { return current.Message(code, data) }
