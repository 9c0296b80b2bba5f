// Package resource bounds the memory and read throughput spent while
// materializing sources.
//
// A nil *Controller is valid and imposes no limits.
package resource
