// Package trace couples a result.Result with provenance: a unique id and
// the UTC time the traced computation began. The stamp survives Then/Map
// and Switch, so a value can be followed through a pipeline without the
// container itself giving up structural equality.
package trace
