// Package lessons resolves track/lesson content for rendering and scores
// finished attempts. Content payloads are a tagged union keyed by the
// lesson's type field; scoring is pure and reports a single 0-100 value
// per attempt sequence.
package lessons

// Type is the lesson's exercise kind.
type Type string

const (
	TypeMCQ              Type = "mcq"
	TypeRepeatAfterMe    Type = "repeat_after_me"
	TypeFillInBlank      Type = "fill_in_blank"
	TypeWordMatching     Type = "word_matching"
	TypeListening        Type = "listening_comprehension"
	TypeTranslation      Type = "translation"
	TypeSentenceBuilding Type = "sentence_building"
)

// KnownTypes lists every exercise kind this client can render.
var KnownTypes = []Type{
	TypeMCQ,
	TypeRepeatAfterMe,
	TypeFillInBlank,
	TypeWordMatching,
	TypeListening,
	TypeTranslation,
	TypeSentenceBuilding,
}

// Content is the decoded, type-specific payload of a lesson.
type Content interface {
	lessonContent()
}

// MCQContent is a multiple-choice question.
type MCQContent struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// RepeatAfterMeContent is a pronunciation exercise.
type RepeatAfterMeContent struct {
	KannadaPhrase      string `json:"kannada_phrase"`
	EnglishTranslation string `json:"english_translation"`
	PronunciationGuide string `json:"pronunciation_guide,omitempty"`
	AudioURL           string `json:"audio_url,omitempty"`
}

// FillInBlankContent is a sentence with a missing word.
type FillInBlankContent struct {
	Sentence      string   `json:"sentence"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	EnglishHint   string   `json:"english_hint,omitempty"`
}

// WordPair is one kannada/english pair in a matching exercise.
type WordPair struct {
	Kannada string `json:"kannada"`
	English string `json:"english"`
}

// WordMatchingContent is a pair-matching exercise.
type WordMatchingContent struct {
	Pairs []WordPair `json:"pairs"`
}

// ListeningContent is a listening comprehension question.
type ListeningContent struct {
	AudioText     string   `json:"audio_text"`
	AudioURL      string   `json:"audio_url,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// TranslationContent is a free-text translation exercise with a set of
// accepted answers.
type TranslationContent struct {
	Direction      string   `json:"direction"` // en_to_kn | kn_to_en
	SourceText     string   `json:"source_text"`
	CorrectAnswers []string `json:"correct_answers"`
	Hints          []string `json:"hints,omitempty"`
}

// SentenceBuildingContent is a word-bank ordering exercise.
type SentenceBuildingContent struct {
	EnglishSentence string   `json:"english_sentence"`
	WordBank        []string `json:"word_bank"`
	CorrectOrder    []string `json:"correct_order"`
}

func (MCQContent) lessonContent()              {}
func (RepeatAfterMeContent) lessonContent()    {}
func (FillInBlankContent) lessonContent()      {}
func (WordMatchingContent) lessonContent()     {}
func (ListeningContent) lessonContent()        {}
func (TranslationContent) lessonContent()      {}
func (SentenceBuildingContent) lessonContent() {}
