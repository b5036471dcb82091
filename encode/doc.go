// Package encode renders ir documents back to jsonc source.
//
// The encoder is a layout engine, not a serializer: scalar literals
// are copied verbatim from the parsed source, and only the whitespace
// between tokens is rewritten. Containers marked Multiline print one
// entry per line at two spaces per nesting level; everything else
// prints inline. Output always ends with exactly one newline.
package encode
