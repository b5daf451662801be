// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionEntriesColumns holds the columns for the "session_entries" table.
	SessionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionEntriesTable holds the schema information for the "session_entries" table.
	SessionEntriesTable = &schema.Table{
		Name:       "session_entries",
		Columns:    SessionEntriesColumns,
		PrimaryKey: []*schema.Column{SessionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionentry_key",
				Unique:  false,
				Columns: []*schema.Column{SessionEntriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionEntriesTable,
	}
)

func init() {
}
