// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SessionEntry is the predicate function for sessionentry builders.
type SessionEntry func(*sql.Selector)
