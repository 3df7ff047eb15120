// Package middleware provides HTTP middleware shared by the directory routes.
package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// clientIDKey is the context key for the resolved client identifier.
const clientIDKey ContextKey = "clientID"

// ClientIdentity resolves the caller's IP and stores it in the request context.
// With trustForwarded set, the first X-Forwarded-For entry is used instead of
// the socket address; only enable it behind a proxy that overwrites the header.
func ClientIdentity(trustForwarded bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ClientIDFromAddr(r.RemoteAddr)
			if trustForwarded {
				if fwd := forwardedFor(r.Header.Get("X-Forwarded-For")); fwd != "" {
					clientID = fwd
				}
			}

			ctx := context.WithValue(r.Context(), clientIDKey, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIDFromAddr strips the port from a RemoteAddr, falling back to the
// whole value when it does not parse.
func ClientIDFromAddr(remoteAddr string) string {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return ip
}

// GetClientID extracts the client identifier from the request context.
func GetClientID(r *http.Request) (string, error) {
	clientID, ok := r.Context().Value(clientIDKey).(string)
	if !ok || clientID == "" {
		return "", fmt.Errorf("client ID not found in request context")
	}
	return clientID, nil
}

// ClientIDKey returns the context key for the client ID (for testing purposes).
func ClientIDKey() ContextKey {
	return clientIDKey
}

func forwardedFor(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}
