// Package coordination selects the coordinating atoms around a chosen
// center: a distance-sorted neighbor list within a radius, with an overlap
// guard rejecting atoms coincident with the center, and a gap-based
// auto-radius search for a target coordination number.
package coordination
