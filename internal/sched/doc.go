// Package sched provides the "schedule a callback / cancel it" primitives
// the animation loops are built on.
//
//   - [Manual]: virtual clock, advanced explicitly (tests, headless runs)
//   - [Loop]: single-goroutine event loop driven by wall-clock timers
//
// Both run every callback on one goroutine, so state touched only from
// callbacks needs no locking.
package sched
