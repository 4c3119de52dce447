package slapstick

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// ──────────────────────────────────────────────
// Tool Framework — transport-agnostic tool definitions
// ──────────────────────────────────────────────

// ToolParam describes a single parameter of a tool.
type ToolParam struct {
	Name        string
	Type        string // "string", "integer", "array"
	Description string
	Required    bool
	Default     any
	Enum        []string
	Items       string // element type when Type == "array"
}

// ToolHandlerFunc executes a tool with already-decoded arguments.
// A returned error is a domain-level validation failure, not a fault.
type ToolHandlerFunc func(args map[string]any) (any, error)

// Tool defines a callable tool with metadata and handler.
type Tool struct {
	Name        string
	Description string
	Parameters  []ToolParam
	Handler     ToolHandlerFunc
}

// InputSchema exports the tool's parameters as a JSON Schema object in MCP
// inputSchema form.
func (t *Tool) InputSchema() map[string]any {
	properties := make(map[string]any, len(t.Parameters))
	var required []string

	for _, p := range t.Parameters {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Type == "array" && p.Items != "" {
			prop["items"] = map[string]any{"type": p.Items}
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// ToolRegistry manages tool registration and execution.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]*Tool)}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(t *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = t
}

// Get retrieves a tool by name, or nil.
func (r *ToolRegistry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Len returns the number of registered tools.
func (r *ToolRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute runs a tool by name with the given arguments.
func (r *ToolRegistry) Execute(name string, args map[string]any) (any, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tool not found: %q", name)
	}
	if args == nil {
		args = make(map[string]any)
	}
	for _, p := range t.Parameters {
		if p.Required {
			if _, exists := args[p.Name]; !exists {
				return nil, fmt.Errorf("tool %q missing required argument: %q", name, p.Name)
			}
		}
	}
	return t.Handler(args)
}

// ──────────────────────────────────────────────
// Enhancer tool bindings
// ──────────────────────────────────────────────

const defaultParamValue = 5

// RegisterEnhancerTools registers the four enhancement operations on the
// given registry.
func RegisterEnhancerTools(reg *ToolRegistry, e *Enhancer) {
	reg.Register(&Tool{
		Name:        "enhance_with_intent",
		Description: "Enhance an image prompt with slapstick design principles based on design intent. Maps creative intent to specific slapstick parameters and generates enhanced and negative prompts.",
		Parameters: []ToolParam{
			{Name: "base_prompt", Type: "string", Description: "The original image description (e.g. \"A corporate office\")", Required: true},
			{Name: "subject_type", Type: "string", Description: "Category of subject", Required: true, Enum: SubjectTypeValues()},
			{Name: "emotional_tone", Type: "string", Description: "Emotional quality to convey", Required: true, Enum: EmotionalToneValues()},
			{Name: "visual_priorities", Type: "array", Items: "string", Description: "Priorities to emphasize (1-3 recommended)", Required: true},
			{Name: "intensity", Type: "string", Description: "Overall intensity level", Required: true, Enum: IntensityLevelValues()},
		},
		Handler: func(args map[string]any) (any, error) {
			basePrompt, err := stringArg(args, "base_prompt")
			if err != nil {
				return nil, err
			}
			subject, err := stringArg(args, "subject_type")
			if err != nil {
				return nil, err
			}
			tone, err := stringArg(args, "emotional_tone")
			if err != nil {
				return nil, err
			}
			priorities, err := stringListArg(args, "visual_priorities")
			if err != nil {
				return nil, err
			}
			intensity, err := stringArg(args, "intensity")
			if err != nil {
				return nil, err
			}
			return e.EnhanceWithIntent(basePrompt, subject, tone, priorities, intensity)
		},
	})

	reg.Register(&Tool{
		Name:        "enhance_with_parameters",
		Description: "Enhance an image prompt with explicit slapstick parameter values (all 0-10). Use this for direct control over the six parameters, or to adjust values suggested by enhance_with_intent.",
		Parameters: append([]ToolParam{
			{Name: "base_prompt", Type: "string", Description: "The original image description", Required: true},
		}, parameterToolParams()...),
		Handler: func(args map[string]any) (any, error) {
			basePrompt, err := stringArg(args, "base_prompt")
			if err != nil {
				return nil, err
			}
			params, err := vectorArgs(args)
			if err != nil {
				return nil, err
			}
			return e.EnhanceWithParameters(basePrompt, params)
		},
	})

	reg.Register(&Tool{
		Name:        "describe_parameters",
		Description: "Get human-readable descriptions of what specific parameter values mean. Useful for understanding how parameters affect the final image.",
		Parameters:  parameterToolParams(),
		Handler: func(args map[string]any) (any, error) {
			params, err := vectorArgs(args)
			if err != nil {
				return nil, err
			}
			return e.Describe(params)
		},
	})

	reg.Register(&Tool{
		Name:        "get_available_options",
		Description: "Get all available options for design intent parameters.",
		Handler: func(args map[string]any) (any, error) {
			return e.AvailableOptions(), nil
		},
	})
}

func parameterToolParams() []ToolParam {
	descriptions := map[Parameter]string{
		ParamExaggeration: "Scale distortion level (0-10)",
		ParamTiming:       "Rhythmic composition level (0-10)",
		ParamPhysical:     "Physical comedy level (0-10)",
		ParamRuleOfThree:  "Triplet pattern level (0-10)",
		ParamReadability:  "Graphic clarity level (0-10)",
		ParamTension:      "Suspense/precarious balance level (0-10)",
	}
	params := make([]ToolParam, 0, len(parameterOrder))
	for _, p := range parameterOrder {
		params = append(params, ToolParam{
			Name:        string(p),
			Type:        "integer",
			Description: descriptions[p],
			Default:     defaultParamValue,
		})
	}
	return params
}

// ──────────────────────────────────────────────
// Argument decoding
// ──────────────────────────────────────────────

func stringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", &InvalidParameterError{Param: name, Reason: "missing required string"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be a string, got %T", raw)}
	}
	return s, nil
}

func stringListArg(args map[string]any, name string) ([]string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be a list of strings, got element %T", item)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be a list of strings, got %T", raw)}
	}
}

// intArg interprets a JSON argument as an integer. JSON numbers decode as
// float64; fractional values are rejected rather than truncated.
func intArg(args map[string]any, name string, fallback int) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return fallback, nil
	}
	switch n := raw.(type) {
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be an integer, got %v", n)}
		}
		return int(n), nil
	default:
		return 0, &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be an integer, got %T", raw)}
	}
}

// vectorArgs decodes the six parameter arguments, defaulting each to 5 and
// clamping to [0,10].
func vectorArgs(args map[string]any) (ParameterVector, error) {
	var v ParameterVector
	for _, p := range parameterOrder {
		n, err := intArg(args, string(p), defaultParamValue)
		if err != nil {
			return ParameterVector{}, err
		}
		v = v.With(p, clampValue(n))
	}
	return v, nil
}
