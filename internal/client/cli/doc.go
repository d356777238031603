// Package cli provides the interactive VoiceArchive terminal client.
//
// It wires configuration, the local database, the remote API client and
// the capture device into an interactive REPL that keeps working offline.
// Typical flow: resume or sign in, record clips, tag them, then sync them
// to the server when it is reachable.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Record a word, story or song and save it with its metadata
//   - List (with filters) / Show / Edit / Delete recordings
//   - Threads and archive statistics
//   - Sync local recordings and manage bookmarks
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
