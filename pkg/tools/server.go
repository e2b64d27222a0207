/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tools exposes the XiO device-management operations as callable
// tools for a host automation runtime, over a minimal MCP-style HTTP surface.
package tools

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/carverauto/xiobridge/pkg/logger"
	"github.com/carverauto/xiobridge/pkg/xio"
)

// Tool represents a callable tool.
type Tool struct {
	Name        string
	Description string
	Handler     func(ctx *CallContext, args json.RawMessage) (interface{}, error)
}

// CallContext carries per-call plumbing into tool handlers.
type CallContext struct {
	*http.Request
	RequestID string
}

// ToolRequest represents a tool call request.
type ToolRequest struct {
	Method string `json:"method"`
	Params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"params"`
}

// ToolResponse represents a tool call response.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  *ToolError  `json:"error,omitempty"`
}

// ToolError is the externally visible error representation of a failed call.
type ToolError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// Server registers and serves the device-management tools.
type Server struct {
	client DeviceManager
	logger logger.Logger
	tools  map[string]Tool
}

// NewServer creates a tool server wired to the given device client.
func NewServer(client DeviceManager, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewTestLogger()
	}

	s := &Server{
		client: client,
		logger: log,
		tools:  make(map[string]Tool),
	}

	s.registerDeviceTools()

	return s
}

// Tools lists the registered tools, sorted by name.
func (s *Server) Tools() []Tool {
	list := make([]Tool, 0, len(s.tools))
	for _, tool := range s.tools {
		list = append(list, tool)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return list
}

// RegisterRoutes adds the tool endpoints to the provided router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	s.logger.Info().Int("tools", len(s.tools)).Msg("Registering tool routes")

	toolRouter := router.PathPrefix("/mcp").Subrouter()
	toolRouter.HandleFunc("/tools/call", s.handleToolCall).Methods(http.MethodPost)
	toolRouter.HandleFunc("/tools/list", s.handleToolList).Methods(http.MethodGet)
}

func (s *Server) register(name, description string, handler func(ctx *CallContext, args json.RawMessage) (interface{}, error)) {
	s.tools[name] = Tool{
		Name:        name,
		Description: description,
		Handler:     handler,
	}
}

// handleToolCall handles tool execution requests.
func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ToolRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &ToolError{Code: http.StatusBadRequest, Message: "Invalid request body"})
		return
	}

	tool, exists := s.tools[req.Params.Name]
	if !exists {
		s.writeError(w, &ToolError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Tool not found: %s", req.Params.Name),
		})

		return
	}

	s.logger.Debug().
		Str("request_id", requestID).
		Str("tool", tool.Name).
		Msg("Executing tool call")

	result, err := tool.Handler(&CallContext{Request: r, RequestID: requestID}, req.Params.Arguments)
	if err != nil {
		toolErr := translateError(err)
		s.logger.Warn().
			Str("request_id", requestID).
			Str("tool", tool.Name).
			Str("kind", toolErr.Kind).
			Msg("Tool call failed")
		s.writeError(w, toolErr)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToolResponse{Result: result}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode tool call response")
	}
}

// handleToolList returns the list of available tools.
func (s *Server) handleToolList(w http.ResponseWriter, _ *http.Request) {
	tools := make([]map[string]string, 0, len(s.tools))

	for _, tool := range s.Tools() {
		tools = append(tools, map[string]string{
			"name":        tool.Name,
			"description": tool.Description,
		})
	}

	response := map[string]interface{}{
		"tools": tools,
		"count": len(tools),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode tool list response")
	}
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, toolErr *ToolError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(toolErr.Code)

	if err := json.NewEncoder(w).Encode(ToolResponse{Error: toolErr}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode error response")
	}
}

// translateError maps client error kinds to the external representation.
func translateError(err error) *ToolError {
	apiErr, ok := xio.AsError(err)
	if !ok {
		return &ToolError{
			Code:    http.StatusInternalServerError,
			Kind:    string(xio.KindRequestFailed),
			Message: err.Error(),
		}
	}

	code := http.StatusBadGateway

	switch apiErr.Kind {
	case xio.KindInvalidArgument:
		code = http.StatusBadRequest
	case xio.KindNotFound:
		code = http.StatusNotFound
	case xio.KindAuthError:
		code = http.StatusUnauthorized
	case xio.KindRateLimited:
		code = http.StatusTooManyRequests
	case xio.KindTimeout:
		code = http.StatusGatewayTimeout
	case xio.KindNetworkError, xio.KindRequestFailed:
		code = http.StatusBadGateway
	}

	return &ToolError{
		Code:    code,
		Kind:    string(apiErr.Kind),
		Message: apiErr.Message,
	}
}
