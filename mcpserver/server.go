package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	slapstick "github.com/dmarsters/slapstick-enhancer"
)

// ──────────────────────────────────────────────
// Server — JSON-RPC dispatch
// ──────────────────────────────────────────────

// Server dispatches MCP requests to a slapstick tool registry. It holds no
// per-request state; one Server may serve any number of concurrent requests.
type Server struct {
	info     ServerInfo
	registry *slapstick.ToolRegistry
	logger   *zap.Logger
}

// New creates a Server for the given registry. A nil logger disables logging.
func New(cfg Config, registry *slapstick.ToolRegistry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		info:     ServerInfo{Name: cfg.Name, Version: cfg.Version},
		registry: registry,
		logger:   logger,
	}
}

// Handle processes one raw JSON-RPC payload and returns the encoded response,
// or nil when the payload is a notification and no response is due.
func (s *Server) Handle(ctx context.Context, payload []byte) []byte {
	var req rpcRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		s.logger.Warn("unparseable request", zap.Error(err))
		return encodeResponse(&rpcResponse{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   &rpcError{Code: codeParseError, Message: "parse error"},
		})
	}

	if req.Method == "" {
		return s.errorResponse(&req, codeInvalidRequest, "missing method")
	}

	result, rpcErr := s.dispatch(ctx, &req)
	if req.isNotification() {
		return nil
	}
	resp := &rpcResponse{JSONRPC: "2.0", ID: req.ID}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	return encodeResponse(resp)
}

func (s *Server) dispatch(ctx context.Context, req *rpcRequest) (any, *rpcError) {
	if err := ctx.Err(); err != nil {
		return nil, &rpcError{Code: codeInternalError, Message: err.Error()}
	}

	switch req.Method {
	case "initialize":
		s.logger.Info("initialize", zap.String("server", s.info.Name))
		return &initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{}},
			ServerInfo:      s.info,
		}, nil

	case "notifications/initialized":
		return nil, nil

	case "ping":
		return map[string]any{}, nil

	case "tools/list":
		tools := s.registry.List()
		defs := make([]toolDef, 0, len(tools))
		for _, t := range tools {
			defs = append(defs, toolDef{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: t.InputSchema(),
			})
		}
		return &toolsListResult{Tools: defs}, nil

	case "tools/call":
		return s.callTool(req)

	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
}

// callTool executes a registered tool. Domain validation failures become
// isError tool results carrying {"error": ...}, never protocol errors: the
// serving process must not fault on bad creative input.
func (s *Server) callTool(req *rpcRequest) (any, *rpcError) {
	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid tools/call params"}
	}
	if params.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "missing tool name"}
	}
	if s.registry.Get(params.Name) == nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", params.Name)}
	}

	out, err := s.registry.Execute(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool rejected input",
			zap.String("tool", params.Name),
			zap.String("reason", err.Error()))
		body, merr := json.Marshal(map[string]string{"error": err.Error()})
		if merr != nil {
			return nil, &rpcError{Code: codeInternalError, Message: merr.Error()}
		}
		return textResult(string(body), true), nil
	}

	body, merr := json.Marshal(out)
	if merr != nil {
		return nil, &rpcError{Code: codeInternalError, Message: merr.Error()}
	}
	s.logger.Debug("tool call", zap.String("tool", params.Name))
	return textResult(string(body), false), nil
}

func (s *Server) errorResponse(req *rpcRequest, code int, msg string) []byte {
	if req.isNotification() {
		return nil
	}
	return encodeResponse(&rpcResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Error:   &rpcError{Code: code, Message: msg},
	})
}

func encodeResponse(resp *rpcResponse) []byte {
	b, err := json.Marshal(resp)
	if err != nil {
		// Responses are built from marshalable types only; this is the
		// escape hatch for a bug, not a runtime condition.
		fallback := fmt.Sprintf(`{"jsonrpc":"2.0","id":null,"error":{"code":%d,"message":"encode failure"}}`, codeInternalError)
		return []byte(fallback)
	}
	return b
}
