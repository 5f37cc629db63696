// Package cli provides the command-line interface for seedgen.
//
// Commands:
//   - generate: Ask an AI model for fake JSON records (flags or --interactive)
//   - init: Write a starter config.yaml
//   - providers: List supported model providers and their credential keys
//   - version: Show seedgen version
//
// Record data goes to stdout; progress, warnings and logs go to stderr, so
// the output can be piped straight into another tool:
//
//	seedgen generate --quantity 5 --fields "id, name, email" | jq .
//	seedgen generate -q 100 -f "sku, price" -o products.json
//	seedgen generate --interactive
//	seedgen init --provider openai
package cli
