package project

// Name is the project name, used for the MCP server handshake.
const Name = "calc-mcp"

// Version is the project version.
const Version = "0.1.0"
