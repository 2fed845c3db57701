// Package main hosts the punini CLI entrypoint and command graph.
//
// The Cobra-based command tree launches the full-screen player, runs library
// scans, renders library listings, and handles one-shot playback, cover art,
// and lyrics inspection. It centralizes configuration resolution and logger
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
