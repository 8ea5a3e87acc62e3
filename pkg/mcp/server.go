package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-patterns/pkg/calculator"
	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"github.com/sunfmin/mcp-go-patterns/pkg/metrics"
	"github.com/sunfmin/mcp-go-patterns/pkg/singleton"
	"github.com/sunfmin/mcp-go-patterns/pkg/types"
)

// DefaultName is the server name reported when none is configured
const DefaultName = "Go Patterns MCP"

// MCPPatternServer exposes the calculator and the singleton variants as MCP tools
type MCPPatternServer struct {
	server  *server.MCPServer
	name    string
	version string
}

// NewMCPPatternServer creates a new MCP server with all pattern tools registered
func NewMCPPatternServer(name, version string) *MCPPatternServer {
	if name == "" {
		name = DefaultName
	}

	s := &MCPPatternServer{
		server:  server.NewMCPServer(name, version),
		name:    name,
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPPatternServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers all pattern-related tools
func (s *MCPPatternServer) registerTools() {
	s.addPingTool()

	s.addCalculateTool()

	s.addListVariantsTool()
	s.addGetInstanceTool()
	s.addSetNameTool()
	s.addGetNameTool()
	s.addSayHelloTool()

	s.addMetricsTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPPatternServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addCalculateTool adds the calculate tool
func (s *MCPPatternServer) addCalculateTool() {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Apply an arithmetic operator to two numbers"),
		mcp.WithNumber("x",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("One of +, -, * or /"),
		),
	)

	s.server.AddTool(calculateTool, s.Calculate)
}

// addListVariantsTool adds the list_variants tool
func (s *MCPPatternServer) addListVariantsTool() {
	listTool := mcp.NewTool("list_variants",
		mcp.WithDescription("List the singleton variants and their construction state"),
	)

	s.server.AddTool(listTool, s.ListVariants)
}

// addGetInstanceTool adds the get_instance tool
func (s *MCPPatternServer) addGetInstanceTool() {
	getInstanceTool := mcp.NewTool("get_instance",
		mcp.WithDescription("Return the shared instance of a singleton variant"),
		mcp.WithString("variant",
			mcp.Required(),
			mcp.Description("Variant name as reported by list_variants"),
		),
	)

	s.server.AddTool(getInstanceTool, s.GetInstance)
}

// addSetNameTool adds the set_name tool
func (s *MCPPatternServer) addSetNameTool() {
	setNameTool := mcp.NewTool("set_name",
		mcp.WithDescription("Set the name held by the named singleton"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name"),
		),
	)

	s.server.AddTool(setNameTool, s.SetName)
}

// addGetNameTool adds the get_name tool
func (s *MCPPatternServer) addGetNameTool() {
	getNameTool := mcp.NewTool("get_name",
		mcp.WithDescription("Get the name held by the named singleton"),
	)

	s.server.AddTool(getNameTool, s.GetName)
}

// addSayHelloTool adds the say_hello tool
func (s *MCPPatternServer) addSayHelloTool() {
	sayHelloTool := mcp.NewTool("say_hello",
		mcp.WithDescription("Greeting derived from the named singleton's identity"),
	)

	s.server.AddTool(sayHelloTool, s.SayHello)
}

// addMetricsTool adds the metrics tool
func (s *MCPPatternServer) addMetricsTool() {
	metricsTool := mcp.NewTool("metrics",
		mcp.WithDescription("Calculation and construction counters in Prometheus text format"),
	)

	s.server.AddTool(metricsTool, s.Metrics)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPPatternServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - MCP Go Patterns is connected!"), nil
}

// Calculate handles the calculate command
func (s *MCPPatternServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate request")

	x, err := numberArg(request, "x")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	y, err := numberArg(request, "y")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	operator, err := stringArg(request, "operator")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := calculator.Calculate(x, y, operator)
	if err != nil {
		logger.Error("Failed to calculate", "error", err, "x", x, "y", y, "operator", operator)
		return newErrorResult("failed to calculate: %v", err), nil
	}

	response := types.CalculateResponse{
		Status:   "success",
		X:        x,
		Y:        y,
		Operator: operator,
		Result:   result,
		Summary:  fmt.Sprintf("%g %s %g = %g", x, operator, y, result),
	}

	return newToolResultJSON(response)
}

// ListVariants handles the list_variants command
func (s *MCPPatternServer) ListVariants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received list_variants request")

	infos := singleton.Variants()
	variants := make([]types.Variant, len(infos))
	for i, info := range infos {
		variants[i] = types.Variant{
			Name:           info.Variant.String(),
			ThreadSafe:     info.ThreadSafe,
			Initialization: info.Initialization,
			State:          info.State().String(),
			Description:    info.Description,
		}
	}

	return newToolResultJSON(types.VariantListResponse{
		Status:   "success",
		Variants: variants,
	})
}

// GetInstance handles the get_instance command
func (s *MCPPatternServer) GetInstance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received get_instance request")

	name, err := stringArg(request, "variant")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	info, err := singleton.Lookup(name)
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	inst, err := info.Get()
	if err != nil {
		logger.Error("Failed to get instance", "error", err, "variant", name)
		return newErrorResult("failed to get instance: %v", err), nil
	}

	response := types.InstanceResponse{
		Status:   "success",
		Instance: toInstance(inst),
		Summary:  fmt.Sprintf("%s singleton %s", inst.Variant, inst.ID),
	}

	return newToolResultJSON(response)
}

// SetName handles the set_name command
func (s *MCPPatternServer) SetName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received set_name request")

	name, err := stringArg(request, "name")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	singleton.Default.SetName(name)

	return newToolResultJSON(types.NameResponse{
		Status:   "success",
		Name:     singleton.Default.Name(),
		Instance: singleton.Default.Instance().ID.String(),
	})
}

// GetName handles the get_name command
func (s *MCPPatternServer) GetName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received get_name request")

	return newToolResultJSON(types.NameResponse{
		Status:   "success",
		Name:     singleton.Default.Name(),
		Instance: singleton.Default.Instance().ID.String(),
	})
}

// SayHello handles the say_hello command
func (s *MCPPatternServer) SayHello(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received say_hello request")

	return newToolResultJSON(types.HelloResponse{
		Status:  "success",
		Message: singleton.Default.SayHello(),
	})
}

// Metrics handles the metrics command
func (s *MCPPatternServer) Metrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received metrics request")

	text, err := metrics.Text()
	if err != nil {
		logger.Error("Failed to gather metrics", "error", err)
		return newErrorResult("%v", err), nil
	}
	return mcp.NewToolResultText(text), nil
}

func toInstance(inst *singleton.Instance) types.Instance {
	return types.Instance{
		ID:        inst.ID.String(),
		Variant:   inst.Variant.String(),
		CreatedAt: inst.CreatedAt,
	}
}

func numberArg(request mcp.CallToolRequest, name string) (float64, error) {
	v, ok := request.Params.Arguments[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}
	n, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, v)
	}
	return n, nil
}

func stringArg(request mcp.CallToolRequest, name string) (string, error) {
	v, ok := request.Params.Arguments[name]
	if !ok || v == nil {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, v)
	}
	return str, nil
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
