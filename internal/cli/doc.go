// Package cli implements the primext command tree: dot-path queries and
// edits over JSON, YAML, TOML, CUE and HCL documents.
//
//	primext get db.host -f config.yaml
//	primext set db.port 5433 -f config.yaml -o yaml
//	cat doc.json | primext flatten --format json -o text
package cli
