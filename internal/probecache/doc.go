// Package probecache persists audio header probe results in SQLite so a
// rebuild over an unchanged corpus skips re-opening every file.
//
// Entries are keyed by absolute file path and validated against the file's
// size and modification time; a file that changed on disk misses the cache
// and is probed again. The cache is semantically transparent: a hit returns
// exactly what a fresh probe of the same file would.
package probecache
