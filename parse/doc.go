// Package parse builds ir documents from jsonc source.
//
// The builder is a recursive descent parser over the token stream. It
// attaches comments to the nodes they belong to, detects trailing
// commas, and records enough of the source layout (newlines, blank
// lines) for the encoder to reproduce the document's structure.
package parse
