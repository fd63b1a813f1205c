// Package mcp implements the Model Context Protocol server for tadoru.
//
// The mcp package provides:
// - MCP server implementation for external tool integration
// - A check_links tool wrapping the link checking core
// - Structured JSON results for MCP clients
package mcp
