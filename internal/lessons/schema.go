package lessons

// JSON schemas for each lesson content payload. Validation happens before
// the typed decode so a malformed payload surfaces as a content error
// instead of a half-filled struct.

var contentSchemas = map[Type]map[string]any{
	TypeMCQ: {
		"type": "object",
		"properties": map[string]any{
			"question":       map[string]any{"type": "string", "minLength": 1},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
			"correct_answer": map[string]any{"type": "string", "minLength": 1},
			"explanation":    map[string]any{"type": "string"},
		},
		"required": []any{"question", "options", "correct_answer"},
	},
	TypeRepeatAfterMe: {
		"type": "object",
		"properties": map[string]any{
			"kannada_phrase":      map[string]any{"type": "string", "minLength": 1},
			"english_translation": map[string]any{"type": "string", "minLength": 1},
			"pronunciation_guide": map[string]any{"type": "string"},
			"audio_url":           map[string]any{"type": "string"},
		},
		"required": []any{"kannada_phrase", "english_translation"},
	},
	TypeFillInBlank: {
		"type": "object",
		"properties": map[string]any{
			"sentence":       map[string]any{"type": "string", "minLength": 1},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"correct_answer": map[string]any{"type": "string", "minLength": 1},
			"english_hint":   map[string]any{"type": "string"},
		},
		"required": []any{"sentence", "correct_answer"},
	},
	TypeWordMatching: {
		"type": "object",
		"properties": map[string]any{
			"pairs": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kannada": map[string]any{"type": "string", "minLength": 1},
						"english": map[string]any{"type": "string", "minLength": 1},
					},
					"required": []any{"kannada", "english"},
				},
			},
		},
		"required": []any{"pairs"},
	},
	TypeListening: {
		"type": "object",
		"properties": map[string]any{
			"audio_text":     map[string]any{"type": "string", "minLength": 1},
			"audio_url":      map[string]any{"type": "string"},
			"question":       map[string]any{"type": "string", "minLength": 1},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
			"correct_answer": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"audio_text", "question", "options", "correct_answer"},
	},
	TypeTranslation: {
		"type": "object",
		"properties": map[string]any{
			"direction":       map[string]any{"type": "string", "enum": []any{"en_to_kn", "kn_to_en"}},
			"source_text":     map[string]any{"type": "string", "minLength": 1},
			"correct_answers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
			"hints":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"direction", "source_text", "correct_answers"},
	},
	TypeSentenceBuilding: {
		"type": "object",
		"properties": map[string]any{
			"english_sentence": map[string]any{"type": "string", "minLength": 1},
			"word_bank":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
			"correct_order":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
		},
		"required": []any{"english_sentence", "word_bank", "correct_order"},
	},
}
