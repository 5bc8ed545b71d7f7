// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/List operations guarded by a sync.RWMutex.  The
// LoadOrStore primitive gives append-only tables first-write-wins semantics.
package syncmap
