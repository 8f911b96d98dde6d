// Package engine implements the concurrent clustering core: per-point
// visitation state, cluster identity allocation, frontier expansion, and
// worker dispatch.
//
// All mutable run state lives in PointStore and is manipulated through
// atomic per-point transitions, so the ownership discipline is enforced in
// one place. The Expander claims points through the store's visited gate
// and expands one core point's reachable region at a time; the Coordinator
// drives every point index through a bounded worker pool.
package engine
