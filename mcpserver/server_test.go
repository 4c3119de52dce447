package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	slapstick "github.com/dmarsters/slapstick-enhancer"
)

// ══════════════════════════════════════════════
// Server dispatch tests
// ══════════════════════════════════════════════

func newTestServer() *Server {
	registry := slapstick.NewToolRegistry()
	slapstick.RegisterEnhancerTools(registry, slapstick.NewEnhancer())
	return New(DefaultConfig(), registry, nil)
}

func handleJSON(t *testing.T, s *Server, payload string) *rpcResponse {
	t.Helper()
	raw := s.Handle(context.Background(), []byte(payload))
	if raw == nil {
		t.Fatalf("expected a response for %s", payload)
	}
	var resp rpcResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unparseable response %s: %v", raw, err)
	}
	return &resp
}

// resultAs re-marshals the decoded result into the given shape.
func resultAs(t *testing.T, resp *rpcResponse, out any) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected rpc error: %v", resp.Error)
	}
	b, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatal(err)
	}
}

func TestHandle_Initialize(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`)

	var result initializeResult
	resultAs(t, resp, &result)
	if result.ProtocolVersion != protocolVersion {
		t.Fatalf("protocolVersion = %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "slapstick-enhancer" {
		t.Fatalf("serverInfo.name = %q", result.ServerInfo.Name)
	}
}

func TestHandle_NotificationProducesNoResponse(t *testing.T) {
	s := newTestServer()
	raw := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	if raw != nil {
		t.Fatalf("notifications must not produce output, got %s", raw)
	}
}

func TestHandle_Ping(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":7,"method":"ping"}`)
	if resp.Error != nil {
		t.Fatalf("ping failed: %v", resp.Error)
	}
	if string(resp.ID) != "7" {
		t.Fatalf("response id = %s, want 7", resp.ID)
	}
}

func TestHandle_ToolsList(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	var result toolsListResult
	resultAs(t, resp, &result)
	if len(result.Tools) != 4 {
		t.Fatalf("tools = %d, want 4", len(result.Tools))
	}
	for _, tool := range result.Tools {
		if tool.InputSchema["type"] != "object" {
			t.Fatalf("tool %s inputSchema type = %v", tool.Name, tool.InputSchema["type"])
		}
	}
}

func TestHandle_ToolsCall_Success(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"enhance_with_parameters","arguments":{"base_prompt":"a cat"}}}`)

	var result toolResult
	resultAs(t, resp, &result)
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("content = %+v", result.Content)
	}

	var body struct {
		ParametersUsed map[string]int `json:"parameters_used"`
		EnhancedPrompt string         `json:"enhanced_prompt"`
		NegativePrompt string         `json:"negative_prompt"`
	}
	if err := json.Unmarshal([]byte(result.Content[0].Text), &body); err != nil {
		t.Fatalf("tool output not JSON: %v", err)
	}
	if body.ParametersUsed["tension"] != 5 {
		t.Fatalf("default tension = %d, want 5", body.ParametersUsed["tension"])
	}
	if !strings.HasPrefix(body.EnhancedPrompt, "a cat, ") {
		t.Fatalf("enhanced prompt = %q", body.EnhancedPrompt)
	}
	if body.NegativePrompt != "blurry, low quality, distorted, ugly" {
		t.Fatalf("negative prompt = %q", body.NegativePrompt)
	}
}

func TestHandle_ToolsCall_DomainErrorIsToolError(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"enhance_with_intent","arguments":{"base_prompt":"x","subject_type":"spaceship","emotional_tone":"tense","visual_priorities":[],"intensity":"extreme"}}}`)

	var result toolResult
	resultAs(t, resp, &result)
	if !result.IsError {
		t.Fatal("invalid enum input must surface as an isError tool result")
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(result.Content[0].Text), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["error"], `invalid subject_type: "spaceship"`) {
		t.Fatalf("error body = %q", body["error"])
	}
}

func TestHandle_ToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"nope","arguments":{}}}`)
	if resp.Error == nil || resp.Error.Code != codeInvalidParams {
		t.Fatalf("expected invalid params error, got %+v", resp.Error)
	}
}

func TestHandle_MethodNotFound(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":6,"method":"resources/list"}`)
	if resp.Error == nil || resp.Error.Code != codeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", resp.Error)
	}
}

func TestHandle_ParseError(t *testing.T) {
	s := newTestServer()
	raw := s.Handle(context.Background(), []byte(`{not json`))
	var resp rpcResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != codeParseError {
		t.Fatalf("expected parse error, got %+v", resp.Error)
	}
}

func TestHandle_MissingMethod(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":8}`)
	if resp.Error == nil || resp.Error.Code != codeInvalidRequest {
		t.Fatalf("expected invalid request, got %+v", resp.Error)
	}
}

func TestHandle_CancelledContext(t *testing.T) {
	s := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	raw := s.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":9,"method":"ping"}`))
	var resp rpcResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != codeInternalError {
		t.Fatalf("expected internal error for cancelled context, got %+v", resp.Error)
	}
}

func TestHandle_DescribeParametersFlatShape(t *testing.T) {
	s := newTestServer()
	resp := handleJSON(t, s, `{"jsonrpc":"2.0","id":10,"method":"tools/call","params":{"name":"describe_parameters","arguments":{"tension":0}}}`)

	var result toolResult
	resultAs(t, resp, &result)
	var body map[string]json.RawMessage
	if err := json.Unmarshal([]byte(result.Content[0].Text), &body); err != nil {
		t.Fatal(err)
	}
	var tension string
	if err := json.Unmarshal(body["tension"], &tension); err != nil {
		t.Fatal(err)
	}
	if tension != "peaceful balance" {
		t.Fatalf("tension description = %q", tension)
	}
	if _, ok := body["parameters"]; !ok {
		t.Fatal("parameters field missing from describe output")
	}
}
