// Package mapping compiles mapping-table rows into an indexed rule set.
//
// Every mapping row names a source value and field ("type") and the
// destination value and field it maps to. Rows are partitioned into three
// kinds, checked in this order:
//
//   - glob: source and destination values are both `*`. The source type is a
//     `|`-joined list of field names whose values are concatenated into the
//     destination field.
//   - composite: the source value contains `|`. Source values and types are
//     parallel `|`-joined lists that must all match.
//   - direct: everything else, a single field/value pair.
//
// Each rule is stored under the key `sourceValue + "." + sourceType` in the
// collection of its kind. A later rule with the same key replaces the earlier
// one and a warning is logged, unless strict duplicate checking is enabled.
package mapping
