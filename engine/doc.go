// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module. It keeps a thin surface so the distance stores share
// the same driver instance.
package engine
