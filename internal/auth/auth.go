// Package auth attaches the authorization headers every Cloud API call of
// this module carries: a bearer token and the caller's bundle identifier.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	AuthorizationHeader    = "authorization"
	BundleIdentifierHeader = "x-ios-bundle-identifier"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

var ErrNoToken = errors.New("no token is available")

// Authorizer builds the per-call headers. A nil TokenSource means the
// client authenticates with application default credentials instead.
type Authorizer struct {
	TokenSource      oauth2.TokenSource
	BundleIdentifier string
}

func (a *Authorizer) Metadata(ctx context.Context) (metadata.MD, error) {
	md := metadata.MD{}
	if a == nil {
		return md, nil
	}

	if a.TokenSource != nil {
		token, err := a.TokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to get token: %w", err)
		}
		if token == nil || token.AccessToken == "" {
			return nil, ErrNoToken
		}
		md.Set(AuthorizationHeader, token.Type()+" "+token.AccessToken)
	}
	if a.BundleIdentifier != "" {
		md.Set(BundleIdentifierHeader, a.BundleIdentifier)
	}

	return md, nil
}

func (a *Authorizer) AttachContext(ctx context.Context) (context.Context, error) {
	md, err := a.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	if len(md) == 0 {
		return ctx, nil
	}

	kv := make([]string, 0, len(md)*2)
	for k, vs := range md {
		for _, v := range vs {
			kv = append(kv, k, v)
		}
	}
	return metadata.AppendToOutgoingContext(ctx, kv...), nil
}

func (a *Authorizer) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx, err := a.AttachContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to attach headers to %s: %w", method, err)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func (a *Authorizer) StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx, err := a.AttachContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to attach headers to %s: %w", method, err)
		}
		return streamer(ctx, desc, cc, method, opts...)
	}
}

func (a *Authorizer) DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithChainUnaryInterceptor(a.UnaryClientInterceptor()),
		grpc.WithChainStreamInterceptor(a.StreamClientInterceptor()),
	}
}

// ClientOptions returns the options for a generated Cloud client talking to
// endpoint. The bearer header replaces the library's own credentials when a
// token source is set.
func (a *Authorizer) ClientOptions(endpoint string) []option.ClientOption {
	opts := make([]option.ClientOption, 0, 4)
	for _, o := range a.DialOptions() {
		opts = append(opts, option.WithGRPCDialOption(o))
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	if a.TokenSource != nil {
		opts = append(opts, option.WithoutAuthentication())
	}
	return opts
}

func StaticTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}

func DefaultTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	ts, err := google.DefaultTokenSource(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}
	return ts, nil
}
