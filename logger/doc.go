// Package logger provides structured logging built on zerolog.
//
// A Logger is cheap to copy and safe for concurrent use. Component
// libraries take an optional *Logger and fall back to Nop when none is
// supplied, so the SDK stays silent unless the caller opts in.
package logger
