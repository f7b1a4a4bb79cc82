package metrics

import (
	"context"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type audioCarrier interface {
	GetAudioContent() []byte
}

func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		ClientRPCs.WithLabelValues(method, status.Code(err).String()).Inc()
		return err
	}
}

func StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		cs, err := streamer(ctx, desc, cc, method, opts...)
		if err != nil {
			ClientRPCs.WithLabelValues(method, status.Code(err).String()).Inc()
			return nil, err
		}
		return &monitoredClientStream{ClientStream: cs, method: method}, nil
	}
}

func DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithChainUnaryInterceptor(UnaryClientInterceptor()),
		grpc.WithChainStreamInterceptor(StreamClientInterceptor()),
	}
}

type monitoredClientStream struct {
	grpc.ClientStream
	method string
	done   sync.Once
}

func (s *monitoredClientStream) SendMsg(m any) error {
	err := s.ClientStream.SendMsg(m)
	if err != nil {
		return err
	}
	StreamMessagesSent.WithLabelValues(s.method).Inc()
	if a, ok := m.(audioCarrier); ok {
		AudioBytesSent.Add(float64(len(a.GetAudioContent())))
	}
	return nil
}

func (s *monitoredClientStream) RecvMsg(m any) error {
	err := s.ClientStream.RecvMsg(m)
	if err == nil {
		StreamMessagesReceived.WithLabelValues(s.method).Inc()
		return nil
	}

	code := codes.OK
	if err != io.EOF {
		code = status.Code(err)
	}
	s.done.Do(func() {
		ClientRPCs.WithLabelValues(s.method, code.String()).Inc()
	})
	return err
}
