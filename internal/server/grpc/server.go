// Package grpc exposes the archive services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/voicearchive/internal/logging"
	pb "github.com/dmitrijs2005/voicearchive/internal/proto"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/dmitrijs2005/voicearchive/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	Register(ctx context.Context, name, email, password string) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	UpdateProfile(ctx context.Context, userID, name, photoURL string) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type recordingService interface {
	PrepareAudioUpload(ctx context.Context, userID, recordingID, contentType string) (string, string, error)
	PushRecordings(ctx context.Context, userID string, recs []*models.Recording) (int, error)
	GetRecordings(ctx context.Context, ids []string) ([]*models.Recording, error)
}

type bookmarkService interface {
	List(ctx context.Context, callerID, userID string) ([]string, error)
	Exists(ctx context.Context, callerID, userID, recordingID string) (bool, error)
	Add(ctx context.Context, callerID, userID, recordingID string) error
	Remove(ctx context.Context, callerID, userID, recordingID string) error
}

var _ pb.ArchiveServer = (*GRPCServer)(nil)

type GRPCServer struct {
	pb.UnimplementedArchiveServer

	address    string
	users      userService
	recordings recordingService
	bookmarks  bookmarkService
	logger     logging.Logger
	jwtSecret  []byte
	health     *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us userService, rs recordingService, bs bookmarkService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		recordings: rs,
		bookmarks:  bs,
		jwtSecret:  []byte(secretKey),
		health:     health.NewServer(),
	}
}

// newServer builds the grpc.Server with the archive and health services
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterArchiveServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully. The health status flips to NOT_SERVING first.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()
	s.health.SetServingStatus(pb.Archive_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}
