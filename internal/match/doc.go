// Package match turns free-text catalog fields into comparable tokens and
// implements the facet menus, the filter predicate and the ranking order
// used to recommend destinations.
//
// Every function here is pure: unparseable input degrades to a documented
// default instead of returning an error.
package match
