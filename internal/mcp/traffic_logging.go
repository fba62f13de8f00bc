package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every JSON-RPC exchange at debug level.
// Notifications have no response, so only their request is logged.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			log := logger.With("direction", direction, "method", method, "session_id", sessionID(req))
			var params any
			if req != nil {
				params = req.GetParams()
			}
			log.Debug("mcp traffic", "stage", "request", "params", formatPayload(params))

			result, err := next(ctx, method, req)
			switch {
			case strings.HasPrefix(method, "notifications/"):
			case err != nil:
				log.Debug("mcp traffic", "stage", "response", "error", err)
			default:
				log.Debug("mcp traffic", "stage", "response", "result", formatPayload(result))
			}
			return result, err
		}
	}
}

// sessionID is empty until the session is bound, and always empty over stdio.
func sessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	if ss, ok := req.GetSession().(*sdkmcp.ServerSession); ok && ss != nil {
		return ss.ID()
	}
	return ""
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
