package cubegen

import (
	"fmt"
	"strings"
)

// SerializeTables renders the tables as text, one block per table, keeping
// the order of tables and columns as given.
func SerializeTables(tables []TableDescriptor) string {
	var sb strings.Builder

	for _, t := range tables {
		name := t.Name
		if t.Schema != "" {
			name = t.Schema + "." + t.Name
		}

		fmt.Fprintf(&sb, "\nTable: %s\n", name)
		fmt.Fprintf(&sb, "  Row Count: %d\n", t.RowCount)
		sb.WriteString("  Columns:\n")

		for _, c := range t.Columns {
			fmt.Fprintf(&sb, "    - %s: %s", c.Name, c.Type)

			if c.PrimaryKey {
				sb.WriteString(" (PRIMARY KEY)")
			}

			if c.Description != "" {
				fmt.Fprintf(&sb, " - %s", c.Description)
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}
