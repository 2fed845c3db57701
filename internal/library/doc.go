// Package library persists the track index in SQLite and keeps it in sync
// with the music directory.
//
// The Store manages the database connection, schema migrations, and track
// queries. The Scanner walks the music directory, probes tags for new or
// modified files, and prunes rows for files that vanished; a scan is
// incremental by mtime and size, so unchanged files are never re-probed. The
// optional Watcher feeds filesystem events back into scans.
//
// The database is an index, not a source of truth: deleting it costs one
// re-scan. Schema changes add a migration file under migrations/.
package library
