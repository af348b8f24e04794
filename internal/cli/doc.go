// Package cli implements the concord command line interface.
//
// The CLI is a thin consumer of the negotiation engine: it loads schema
// files (CUE, YAML, or JSON), calls the orchestrator, and renders the
// result in text or JSON. Exit codes follow the usual convention:
// 0 success, 1 negotiation/validation failure, 2 command error.
package cli
