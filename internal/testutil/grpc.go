package testutil

import (
	"context"
	"net"
	"testing"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	myspeech "github.com/hekt/voice-translation/internal/interfaces/speech"
	mytranslate "github.com/hekt/voice-translation/internal/interfaces/translate"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// MockSpeechClient returns a real speech client connected to mockServer
// through an in-memory listener. opts are applied to the client connection.
func MockSpeechClient(
	t *testing.T,
	ctx context.Context,
	mockServer speechpb.SpeechServer,
	opts ...grpc.DialOption,
) myspeech.Client {
	t.Helper()

	conn := DialBufconn(t, func(s *grpc.Server) {
		speechpb.RegisterSpeechServer(s, mockServer)
	}, opts...)

	client, err := speech.NewClient(ctx, option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func MockTranslationClient(
	t *testing.T,
	ctx context.Context,
	mockServer translatepb.TranslationServiceServer,
	opts ...grpc.DialOption,
) mytranslate.Client {
	t.Helper()

	conn := DialBufconn(t, func(s *grpc.Server) {
		translatepb.RegisterTranslationServiceServer(s, mockServer)
	}, opts...)

	client, err := translate.NewTranslationClient(ctx, option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

// DialBufconn serves the services registered by register on an in-memory
// listener and returns a connection to it.
func DialBufconn(t *testing.T, register func(*grpc.Server), opts ...grpc.DialOption) *grpc.ClientConn {
	t.Helper()

	l := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { l.Close() })

	s := grpc.NewServer()
	register(s)

	go s.Serve(l)
	t.Cleanup(func() { s.Stop() })

	opts = append(opts,
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return l.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	conn, err := grpc.NewClient(
		// use passthrough resolver explicitly to avoid using default dns resolver
		// ref. https://stackoverflow.com/questions/78485578/how-to-use-the-bufconn-package-with-grpc-newclient
		"passthrough://bufnet",
		opts...,
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}
