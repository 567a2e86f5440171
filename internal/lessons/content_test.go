package lessons

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

func lessonOf(t *testing.T, typ string, content any) api.Lesson {
	t.Helper()
	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	return api.Lesson{ID: "l1", Title: "test", Type: typ, Content: raw}
}

func TestDecodeContentEveryKnownType(t *testing.T) {
	cases := []struct {
		typ     Type
		content any
	}{
		{TypeMCQ, MCQContent{
			Question:      "What is hello?",
			Options:       []string{"ನಮಸ್ಕಾರ", "ಧನ್ಯವಾದ"},
			CorrectAnswer: "ನಮಸ್ಕಾರ",
		}},
		{TypeRepeatAfterMe, RepeatAfterMeContent{
			KannadaPhrase:      "ನಮಸ್ಕಾರ",
			EnglishTranslation: "hello",
		}},
		{TypeFillInBlank, FillInBlankContent{
			Sentence:      "ನನ್ನ ಹೆಸರು ___",
			CorrectAnswer: "ರವಿ",
		}},
		{TypeWordMatching, WordMatchingContent{
			Pairs: []WordPair{{Kannada: "ನೀರು", English: "water"}, {Kannada: "ಹಾಲು", English: "milk"}},
		}},
		{TypeListening, ListeningContent{
			AudioText:     "ನಮಸ್ಕಾರ",
			Question:      "What did you hear?",
			Options:       []string{"hello", "goodbye"},
			CorrectAnswer: "hello",
		}},
		{TypeTranslation, TranslationContent{
			Direction:      "en_to_kn",
			SourceText:     "water",
			CorrectAnswers: []string{"ನೀರು"},
		}},
		{TypeSentenceBuilding, SentenceBuildingContent{
			EnglishSentence: "my name is Ravi",
			WordBank:        []string{"ನನ್ನ", "ಹೆಸರು", "ರವಿ"},
			CorrectOrder:    []string{"ನನ್ನ", "ಹೆಸರು", "ರವಿ"},
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			got, err := DecodeContent(lessonOf(t, string(tc.typ), tc.content))
			if err != nil {
				t.Fatalf("DecodeContent: %v", err)
			}
			if got == nil {
				t.Fatal("DecodeContent returned nil content")
			}
		})
	}
}

func TestDecodeContentUnsupportedType(t *testing.T) {
	lesson := api.Lesson{ID: "l1", Type: "handwriting", Content: json.RawMessage(`{}`)}
	_, err := DecodeContent(lesson)
	var unsupported *ErrUnsupportedType
	if !errors.As(err, &unsupported) {
		t.Fatalf("want ErrUnsupportedType, got %v", err)
	}
	if unsupported.Type != "handwriting" {
		t.Errorf("unsupported.Type = %q", unsupported.Type)
	}
}

func TestDecodeContentSchemaViolation(t *testing.T) {
	// mcq without options or a correct answer.
	lesson := api.Lesson{
		ID:      "l1",
		Type:    string(TypeMCQ),
		Content: json.RawMessage(`{"question":"?"}`),
	}
	_, err := DecodeContent(lesson)
	var invalid *ErrInvalidContent
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidContent, got %v", err)
	}
	if invalid.Type != TypeMCQ {
		t.Errorf("invalid.Type = %q", invalid.Type)
	}
}

func TestDecodeContentMalformedJSON(t *testing.T) {
	lesson := api.Lesson{ID: "l1", Type: string(TypeMCQ), Content: json.RawMessage(`{`)}
	if _, err := DecodeContent(lesson); err == nil {
		t.Fatal("want error for malformed payload")
	}
}
