// Package file provides the TOML-backed configuration store.
//
// Values are addressed with dot-notation keys ("provider.base_url") and
// written back as nested TOML tables, so the file stays hand-editable:
//
//	[provider]
//	base_url = "https://api.example-bank-link.com/v1"
//	timeout = 30
package file
