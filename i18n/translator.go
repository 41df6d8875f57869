package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (currently unused
// by the built-in dictionaries; hints carry the specifics instead).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "nested_default":
			return "ネスト型にデフォルト値は指定できません"
		case "length_required":
			return "長さ指定のない list/string/bytes 型は使用できません"
		case "bad_annotation":
			return "長さアノテーションが不正です"
		case "unsupported_list":
			return "サポートされないリスト要素型です"
		case "unsupported_type":
			return "サポートされないデータ型です"
		case "internal_tree":
			return "不正な記述ノードです"
		case "truncated":
			return "バッファ長が一致しません"
		case "value_count":
			return "値の個数が一致しません"
		case "invalid_value":
			return "値の型が不正です"
		case "bad_pattern":
			return "パターンが不正です"
		}
	default: // "en"
		switch code {
		case "nested_default":
			return "cannot have default value on nested types"
		case "length_required":
			return "cannot have unannotated list, string, or bytes type (length required)"
		case "bad_annotation":
			return "invalid length annotation"
		case "unsupported_list":
			return "unsupported list type"
		case "unsupported_type":
			return "unsupported data type"
		case "internal_tree":
			return "invalid description node"
		case "truncated":
			return "buffer size mismatch"
		case "value_count":
			return "value count mismatch"
		case "invalid_value":
			return "invalid value type"
		case "bad_pattern":
			return "invalid pattern"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
