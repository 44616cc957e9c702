// Package api holds types and interfaces shared between goheap
// components and applications embedding them.
package api
