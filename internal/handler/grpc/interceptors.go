package grpc

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

// InterceptorLogger adapts the zerolog-based logger to the go-grpc-middleware
// logging interface.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l := l.With().Fields(fields).Logger()

		switch lvl {
		case logging.LevelDebug:
			l.Debug().Msg(msg)
		case logging.LevelInfo:
			l.Info().Msg(msg)
		case logging.LevelWarn:
			l.Warn().Msg(msg)
		case logging.LevelError:
			l.Error().Msg(msg)
		default:
			l.Info().Int("level", int(lvl)).Msg(msg)
		}
	})
}

// recoveryHandler turns a panic into codes.Internal and logs it.
func recoveryHandler(l *logger.Logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		l.Error().Str("panic", fmt.Sprint(p)).Msg("recovered from panic in gRPC handler")
		return status.Error(codes.Internal, "internal error")
	}
}

// ServerOptions returns the interceptor chain for the gRPC server: panic
// recovery outermost, then call logging.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	recoveryOpts := []recovery.Option{recovery.WithRecoveryHandlerContext(recoveryHandler(h.logger))}
	loggingOpts := []logging.Option{logging.WithLogOnEvents(logging.StartCall, logging.FinishCall)}

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpts...),
			logging.UnaryServerInterceptor(InterceptorLogger(h.logger), loggingOpts...),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpts...),
			logging.StreamServerInterceptor(InterceptorLogger(h.logger), loggingOpts...),
		),
	}
}
