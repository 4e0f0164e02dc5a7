// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, route pattern, remote) and completion (status,
duration_ms). The route pattern is logged instead of the URL path so reveal
tokens never end up in logs.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Translate domain errors:

	if err != nil {
		middleware.WriteError(w, err, "Failed to add participant")
		return
	}

WriteError maps validation errors to 400, not found to 404, state conflicts
to 409 and everything else to 500. Errors without a kind are logged and the
client only sees the fallback message.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
