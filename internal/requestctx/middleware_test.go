// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requestctx

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
)

func newMiddleware() *Middleware {
	return NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*http.Request)
		expectedDevice string
	}{
		{
			name: "remote address",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:4321"
				r.Header.Set("User-Agent", "curl/8.0")
			},
			expectedDevice: "IP: 10.0.0.1 UA: curl/8.0",
		},
		{
			name: "forwarded for wins",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:4321"
				r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
				r.Header.Set("User-Agent", "firefox")
			},
			expectedDevice: "IP: 203.0.113.7 UA: firefox",
		},
		{
			name: "real ip header",
			setup: func(r *http.Request) {
				r.Header.Set("X-Real-Ip", "198.51.100.3")
			},
			expectedDevice: "IP: 198.51.100.3 UA: unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var device string
			handler := newMiddleware().HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				device = FromContext(r.Context()).Device()
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Del("User-Agent")
			tt.setup(req)

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if device != tt.expectedDevice {
				t.Errorf("expected %q, got %q", tt.expectedDevice, device)
			}
		})
	}
}

func TestGRPCInterceptor(t *testing.T) {
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.1.1.1"), Port: 5000}})
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("user-agent", "grpc-go"))

	var device string
	_, err := newMiddleware().GRPCInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		device = FromContext(ctx).Device()
		return nil, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device != "IP: 10.1.1.1 UA: grpc-go" {
		t.Errorf("unexpected device %q", device)
	}
}

func TestDeviceWithoutClient(t *testing.T) {
	if got := FromContext(context.Background()).Device(); got != "IP: unknown UA: unknown" {
		t.Errorf("unexpected device %q", got)
	}
}
