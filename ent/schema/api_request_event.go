package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records one round-trip to the backend API.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Comment("UUID assigned client-side to correlate with UI actions"),
		field.String("operation").
			NotEmpty().
			Comment("Logical operation name, e.g. submit-lesson"),
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.String("endpoint").
			NotEmpty().
			Comment("Request path without the base URL"),
		field.Int("status_code").
			Default(0).
			Comment("HTTP status, 0 when the request never completed"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional().
			Comment("Error text for failed requests"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation"),
		index.Fields("success"),
	}
}
