// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requestctx

import (
	"context"
	"net"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

const unknown = "unknown"

type clientKey struct{}

// Client describes the caller of a request, used to label sessions
type Client struct {
	IP        string
	UserAgent string
}

// Device renders the descriptor stored on user sessions
func (c *Client) Device() string {
	ip, ua := unknown, unknown
	if c != nil && c.IP != "" {
		ip = c.IP
	}
	if c != nil && c.UserAgent != "" {
		ua = c.UserAgent
	}
	return "IP: " + ip + " UA: " + ua
}

func WithClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// FromContext returns the client captured by the middleware, nil if missing
func FromContext(ctx context.Context) *Client {
	c, _ := ctx.Value(clientKey{}).(*Client)
	return c
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "requestctx.Middleware.HTTPMiddleware")
		defer span.End()

		c := &Client{
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
		}

		next.ServeHTTP(w, r.WithContext(WithClient(ctx, c)))
	})
}

func (m *Middleware) GRPCInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, span := m.tracer.Start(ctx, "requestctx.Middleware.GRPCInterceptor")
	defer span.End()

	c := new(Client)

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		c.IP = hostOnly(p.Addr.String())
	}

	// metadata keys are lowercased
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("x-forwarded-for"); len(values) > 0 && values[0] != "" {
			c.IP = firstForwarded(values[0])
		}
		if values := md.Get("user-agent"); len(values) > 0 {
			c.UserAgent = values[0]
		}
	}

	return handler(WithClient(ctx, c), req)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return firstForwarded(xff)
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-Ip")); realIP != "" {
		return realIP
	}

	return hostOnly(r.RemoteAddr)
}

func firstForwarded(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
