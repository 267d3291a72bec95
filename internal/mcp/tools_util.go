// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: an optional parameter that is missing or of the
// wrong type falls back to the caller's default rather than failing the tool
// call. LLMs frequently omit optional parameters or send them in unexpected
// shapes, and a cryptic type error is harder for them to recover from than a
// sensible default.

package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getString extracts a string parameter, returning def when the parameter is
// missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getInt extracts an integer parameter, returning def when the parameter is
// missing or not a number. JSON numbers decode as float64, so the assertion
// goes through float64 first.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}
