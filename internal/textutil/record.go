package textutil

import "strings"

// FieldSeparator delimits fields in the flat data files.
const FieldSeparator = "|"

// IsRecordSafe reports whether value can be written as a single field of a
// `|`-delimited line without breaking the record structure.
func IsRecordSafe(value string) bool {
	return !strings.ContainsAny(value, FieldSeparator+"\r\n")
}
