package lessons

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// ErrUnsupportedType marks a lesson whose type tag this client does not
// know. The renderer must show an explicit "unsupported" result, never
// silently render nothing.
type ErrUnsupportedType struct {
	Type string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported lesson type %q", e.Type)
}

// ErrInvalidContent marks a payload that fails its type's schema.
type ErrInvalidContent struct {
	Type Type
	Err  error
}

func (e *ErrInvalidContent) Error() string {
	return fmt.Sprintf("invalid %s content: %v", e.Type, e.Err)
}

func (e *ErrInvalidContent) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by lesson type.
var schemaCache sync.Map // map[Type]*jsonschema.Schema

// DecodeContent validates and decodes a lesson's raw content payload into
// its typed form, exhaustively matching on the type tag.
func DecodeContent(lesson api.Lesson) (Content, error) {
	t := Type(lesson.Type)
	if _, ok := contentSchemas[t]; !ok {
		return nil, &ErrUnsupportedType{Type: lesson.Type}
	}

	if err := validateContent(t, lesson.Content); err != nil {
		return nil, err
	}

	var (
		content Content
		err     error
	)
	switch t {
	case TypeMCQ:
		content, err = decodeInto[MCQContent](lesson.Content)
	case TypeRepeatAfterMe:
		content, err = decodeInto[RepeatAfterMeContent](lesson.Content)
	case TypeFillInBlank:
		content, err = decodeInto[FillInBlankContent](lesson.Content)
	case TypeWordMatching:
		content, err = decodeInto[WordMatchingContent](lesson.Content)
	case TypeListening:
		content, err = decodeInto[ListeningContent](lesson.Content)
	case TypeTranslation:
		content, err = decodeInto[TranslationContent](lesson.Content)
	case TypeSentenceBuilding:
		content, err = decodeInto[SentenceBuildingContent](lesson.Content)
	default:
		return nil, &ErrUnsupportedType{Type: lesson.Type}
	}
	if err != nil {
		return nil, &ErrInvalidContent{Type: t, Err: err}
	}
	return content, nil
}

func decodeInto[T Content](raw json.RawMessage) (Content, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// validateContent checks raw JSON against the lesson type's schema.
func validateContent(t Type, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidContent{Type: t, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(t)
	if err != nil {
		return &ErrInvalidContent{Type: t, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidContent{Type: t, Err: err}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(t Type) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(contentSchemas[t])
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://lesson-%s.json", t)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(t, compiled)
	return compiled, nil
}
