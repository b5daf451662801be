// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ajith2003madhuvana/learneye-ed-platform/ent/schema"
	"github.com/ajith2003madhuvana/learneye-ed-platform/ent/sessionentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionentryFields := schema.SessionEntry{}.Fields()
	_ = sessionentryFields
	// sessionentryDescKey is the schema descriptor for key field.
	sessionentryDescKey := sessionentryFields[0].Descriptor()
	// sessionentry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sessionentry.KeyValidator = sessionentryDescKey.Validators[0].(func(string) error)
	// sessionentryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionentryDescUpdatedAt := sessionentryFields[2].Descriptor()
	// sessionentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionentry.DefaultUpdatedAt = sessionentryDescUpdatedAt.Default.(func() time.Time)
	// sessionentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionentry.UpdateDefaultUpdatedAt = sessionentryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
