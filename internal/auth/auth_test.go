package auth

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }

func TestAuthorizer_Metadata(t *testing.T) {
	tests := []struct {
		name       string
		authorizer *Authorizer
		want       metadata.MD
		wantErr    bool
	}{
		{
			name: "token and bundle identifier",
			authorizer: &Authorizer{
				TokenSource:      StaticTokenSource("test-token"),
				BundleIdentifier: "com.example.app",
			},
			want: metadata.MD{
				AuthorizationHeader:    []string{"Bearer test-token"},
				BundleIdentifierHeader: []string{"com.example.app"},
			},
		},
		{
			name: "bundle identifier only",
			authorizer: &Authorizer{
				BundleIdentifier: "com.example.app",
			},
			want: metadata.MD{
				BundleIdentifierHeader: []string{"com.example.app"},
			},
		},
		{
			name:       "nil authorizer",
			authorizer: nil,
			want:       metadata.MD{},
		},
		{
			name: "empty token",
			authorizer: &Authorizer{
				TokenSource: StaticTokenSource(""),
			},
			wantErr: true,
		},
		{
			name: "token source error",
			authorizer: &Authorizer{
				TokenSource: tokenSourceFunc(func() (*oauth2.Token, error) {
					return nil, errors.New("token error")
				}),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.authorizer.Metadata(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authorizer.Metadata() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Authorizer.Metadata() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAuthorizer_Metadata_NoToken(t *testing.T) {
	a := &Authorizer{TokenSource: StaticTokenSource("")}
	if _, err := a.Metadata(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Errorf("Authorizer.Metadata() error = %v, want %v", err, ErrNoToken)
	}
}

func TestAuthorizer_ClientOptions(t *testing.T) {
	t.Run("with token source", func(t *testing.T) {
		a := &Authorizer{TokenSource: StaticTokenSource("t")}
		// dial options x2, endpoint, without authentication
		if got := len(a.ClientOptions("speech.googleapis.com:443")); got != 4 {
			t.Errorf("len(ClientOptions()) = %d, want 4", got)
		}
	})
	t.Run("default credentials", func(t *testing.T) {
		a := &Authorizer{}
		if got := len(a.ClientOptions("")); got != 2 {
			t.Errorf("len(ClientOptions()) = %d, want 2", got)
		}
	})
}

type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	incoming chan metadata.MD
}

func (s *healthServer) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.incoming <- md
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

func (s *healthServer) Watch(_ *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	md, _ := metadata.FromIncomingContext(stream.Context())
	s.incoming <- md
	return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING})
}

func dialHealth(t *testing.T, server grpc_health_v1.HealthServer, opts ...grpc.DialOption) grpc_health_v1.HealthClient {
	t.Helper()

	l := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { l.Close() })

	s := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(s, server)
	go s.Serve(l)
	t.Cleanup(func() { s.Stop() })

	opts = append(opts,
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return l.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	conn, err := grpc.NewClient("passthrough://bufnet", opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return grpc_health_v1.NewHealthClient(conn)
}

func TestAuthorizer_Interceptors(t *testing.T) {
	a := &Authorizer{
		TokenSource:      StaticTokenSource("test-token"),
		BundleIdentifier: "com.example.app",
	}

	t.Run("unary", func(t *testing.T) {
		server := &healthServer{incoming: make(chan metadata.MD, 1)}
		client := dialHealth(t, server, a.DialOptions()...)

		if _, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{}); err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		md := <-server.incoming
		if got := md.Get(AuthorizationHeader); len(got) != 1 || got[0] != "Bearer test-token" {
			t.Errorf("authorization header = %v, want %v", got, "Bearer test-token")
		}
		if got := md.Get(BundleIdentifierHeader); len(got) != 1 || got[0] != "com.example.app" {
			t.Errorf("bundle identifier header = %v, want %v", got, "com.example.app")
		}
	})

	t.Run("stream", func(t *testing.T) {
		server := &healthServer{incoming: make(chan metadata.MD, 1)}
		client := dialHealth(t, server, a.DialOptions()...)

		stream, err := client.Watch(context.Background(), &grpc_health_v1.HealthCheckRequest{})
		if err != nil {
			t.Fatalf("Watch() error = %v", err)
		}
		if _, err := stream.Recv(); err != nil {
			t.Fatalf("Recv() error = %v", err)
		}
		md := <-server.incoming
		if got := md.Get(AuthorizationHeader); len(got) != 1 || got[0] != "Bearer test-token" {
			t.Errorf("authorization header = %v, want %v", got, "Bearer test-token")
		}
	})

	t.Run("token error stops the call", func(t *testing.T) {
		server := &healthServer{incoming: make(chan metadata.MD, 1)}
		failing := &Authorizer{TokenSource: StaticTokenSource("")}
		client := dialHealth(t, server, failing.DialOptions()...)

		if _, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{}); !errors.Is(err, ErrNoToken) {
			t.Errorf("Check() error = %v, want %v", err, ErrNoToken)
		}
		if len(server.incoming) != 0 {
			t.Error("server received a call without headers")
		}
	})
}
