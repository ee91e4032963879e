package analyzer

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const askToolDescription = `Analyze current Android phone screen, identify UI elements and return coordinates.

Response format:
- <think>...</think> Analysis process
- <answer>do(action="Tap", element=[x,y])</answer> Action suggestion

Note: Coordinates are relative values (0-1000), conversion formula:
  x_pixel = int(x / 1000 * screen_width)
  y_pixel = int(y / 1000 * screen_height)

Example questions:
- "What coordinates to click the search button?"
- "How to click the settings icon?"
`

// AskInput is the aiAsk tool input.
type AskInput struct {
	Question string `json:"question" jsonschema:"Question about the screen, e.g., 'Where is the search button?'"`
}

// NewServer builds the MCP server exposing the pipeline as the single
// aiAsk tool. The handler always answers with one text content block
// and never a protocol-level error; failures arrive as "Error: ..."
// text per the tool contract.
func NewServer(p *Pipeline, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "screenpeek",
		Title:   "Screenpeek Android screen analyzer",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "aiAsk",
		Description: askToolDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, in AskInput) (*mcp.CallToolResult, any, error) {
		text := p.Query(ctx, in.Question)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	})

	return server
}

// Serve runs the server over stdio until the client disconnects or
// ctx is cancelled.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
