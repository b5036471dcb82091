// Package format is the top level entry point for formatting jsonc
// documents. It wires the tokenizer, the document builder, and the
// layout engine together behind a single call.
package format
