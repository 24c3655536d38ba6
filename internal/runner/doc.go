// Package runner is the stdin/stdout glue around the detection pipeline.
//
// One invocation reads a base64-encoded image as the entire standard input
// stream, runs strikethrough removal, and writes a single JSON envelope to
// standard output:
//
//	{"success": true, "processedImage": "<base64 PNG>", "message": "Strikethroughs removed successfully"}
//	{"success": false, "error": "...", "message": "Failed to process image"}
//
// Logging goes to stderr; stdout carries nothing but the envelope.
//
// # Error Tiers
//
// Missing input is an input error: the failure envelope is emitted and the
// process exits 1. Everything that goes wrong after dispatch (base64 decode,
// raster decode, encode) is a processing error: it is caught, reported in the
// envelope, and the process still exits 0 because a well-formed result was
// emitted.
//
// The package also hosts the selfcheck probe, a secondary entry point that
// verifies decoder registration and runs the pipeline end to end on a
// generated sample.
package runner
