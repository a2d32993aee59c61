// Package types defines the data shared by every pricat stage.
//
// Rows and attribute sets are insertion-ordered string maps. Order matters:
// the serialized catalog lists fields in the order they were first seen so
// that two runs over the same input produce byte-identical documents.
package types
