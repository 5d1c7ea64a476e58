package http

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type clientIPKey struct{}

// ClientIP stores the caller's address in the request context. The first
// X-Forwarded-For entry wins over the connection address.
func ClientIP(ctx huma.Context, next func(huma.Context)) {
	next(huma.WithValue(ctx, clientIPKey{}, clientIP(ctx.Header("X-Forwarded-For"), ctx.RemoteAddr())))
}

// ClientIPFrom returns the address stored by ClientIP.
func ClientIPFrom(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func clientIP(forwarded, remoteAddr string) string {
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// AccessLog logs every API request once it has been handled.
func AccessLog(ctx huma.Context, next func(huma.Context)) {
	start := time.Now()
	next(ctx)

	slog.Info("HTTP request",
		"method", ctx.Method(),
		"path", ctx.URL().Path,
		"status", ctx.Status(),
		"duration", time.Since(start),
	)
}
