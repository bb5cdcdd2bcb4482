// Package writers turns evaluated scenarios into serialized outputs.
//
// Writers own all presentation dispatch: each format registers a streaming
// handler per payload type, and JSON/JSONL go through pkg/api (v1) for a
// stable wire format. Plant evaluation never imports this package.
package writers
