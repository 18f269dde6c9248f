package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "max" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unknown_field":
			return "未宣言のフィールドです"
		case "unknown_attribute":
			return "未宣言の属性です"
		case "frozen_write":
			return "凍結済みインスタンスへの書き込みです"
		case "too_many_args":
			return "位置引数が多すぎます"
		case "duplicate_field":
			return "フィールドは位置引数として既に与えられています"
		case "unknown_keyword":
			return "未知のキーワード引数です"
		case "bad_field_name":
			return "フィールド名が不正です"
		case "duplicate_declaration":
			return "フィールドが重複して宣言されています"
		case "invalid_field":
			return "フィールド宣言が不正です"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "unknown_field":
			return "no such field"
		case "unknown_attribute":
			return "no such attribute"
		case "frozen_write":
			return "write on frozen instance"
		case "too_many_args":
			if data != nil && data["max"] != "" && data["got"] != "" {
				return "takes at most " + data["max"] + " arguments (" + data["got"] + " given)"
			}
			return "too many positional arguments"
		case "duplicate_field":
			return "field already given as positional argument"
		case "unknown_keyword":
			return "unexpected keyword argument"
		case "bad_field_name":
			return "invalid field name"
		case "duplicate_declaration":
			return "field declared more than once"
		case "invalid_field":
			return "field declares both a default and a factory"
		case "parse_error":
			return "parse error"
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
