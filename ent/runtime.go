// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Chagadiye/ctrl-vibe/ent/apirequestevent"
	"github.com/Chagadiye/ctrl-vibe/ent/schema"
	"github.com/Chagadiye/ctrl-vibe/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescRequestID is the schema descriptor for request_id field.
	apirequesteventDescRequestID := apirequesteventFields[0].Descriptor()
	// apirequestevent.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	apirequestevent.RequestIDValidator = apirequesteventDescRequestID.Validators[0].(func(string) error)
	// apirequesteventDescOperation is the schema descriptor for operation field.
	apirequesteventDescOperation := apirequesteventFields[1].Descriptor()
	// apirequestevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	apirequestevent.OperationValidator = apirequesteventDescOperation.Validators[0].(func(string) error)
	// apirequesteventDescMethod is the schema descriptor for method field.
	apirequesteventDescMethod := apirequesteventFields[2].Descriptor()
	// apirequestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequestevent.MethodValidator = apirequesteventDescMethod.Validators[0].(func(string) error)
	// apirequesteventDescEndpoint is the schema descriptor for endpoint field.
	apirequesteventDescEndpoint := apirequesteventFields[3].Descriptor()
	// apirequestevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	apirequestevent.EndpointValidator = apirequesteventDescEndpoint.Validators[0].(func(string) error)
	// apirequesteventDescStatusCode is the schema descriptor for status_code field.
	apirequesteventDescStatusCode := apirequesteventFields[4].Descriptor()
	// apirequestevent.DefaultStatusCode holds the default value on creation for the status_code field.
	apirequestevent.DefaultStatusCode = apirequesteventDescStatusCode.Default.(int)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[5].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescSuccess is the schema descriptor for success field.
	apirequesteventDescSuccess := apirequesteventFields[6].Descriptor()
	// apirequestevent.DefaultSuccess holds the default value on creation for the success field.
	apirequestevent.DefaultSuccess = apirequesteventDescSuccess.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
