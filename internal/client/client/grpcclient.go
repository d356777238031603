package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	pb "github.com/dmitrijs2005/voicearchive/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	onRefresh   func(accessToken, refreshToken string)

	conn   *grpc.ClientConn
	client pb.ArchiveClient
	health healthpb.HealthClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

type Option func(*GRPCClient)

// WithRequestTimeout bounds every call made through the client.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

// WithTokenRefreshHook is called after the client swapped in refreshed
// tokens, so they can be persisted.
func WithTokenRefreshHook(fn func(accessToken, refreshToken string)) Option {
	return func(c *GRPCClient) { c.onRefresh = fn }
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: 15 * time.Second}
	for _, o := range opts {
		o(c)
	}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewArchiveClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *GRPCClient) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token. When the server reports
// it expired, the token pair is refreshed once and the call retried.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := c.tokens()
	if method == pb.Archive_RefreshToken_FullMethodName || access == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	if c.onRefresh != nil {
		c.onRefresh(resp.AccessToken, resp.RefreshToken)
	}

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// Ping asks the standard health service whether the archive is serving.
func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.Archive_ServiceDesc.ServiceName})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) authResult(resp *pb.AuthResponse) Auth {
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return Auth{User: userFromProto(resp.Profile), AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
}

func (c *GRPCClient) Register(ctx context.Context, name, email, password string) (Auth, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return Auth{}, c.mapError(err)
	}
	return c.authResult(resp), nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (Auth, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return Auth{}, c.mapError(err)
	}
	return c.authResult(resp), nil
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, name, photoURL string) (models.User, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Name: name, PhotoUrl: photoURL})
	if err != nil {
		return models.User{}, c.mapError(err)
	}
	return userFromProto(resp), nil
}

func (c *GRPCClient) DeleteAccount(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.client.DeleteAccount(ctx, &emptypb.Empty{}); err != nil {
		return c.mapError(err)
	}
	c.SetTokens("", "")
	return nil
}

func (c *GRPCClient) PrepareAudioUpload(ctx context.Context, recordingID, contentType string) (string, string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.PrepareAudioUpload(ctx, &pb.PrepareAudioUploadRequest{RecordingId: recordingID, ContentType: contentType})
	if err != nil {
		return "", "", c.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (c *GRPCClient) PushRecordings(ctx context.Context, recs []models.Recording) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := &pb.PushRecordingsRequest{Recordings: make([]*pb.Recording, 0, len(recs))}
	for _, r := range recs {
		req.Recordings = append(req.Recordings, recordingToProto(r))
	}

	resp, err := c.client.PushRecordings(ctx, req)
	if err != nil {
		return c.mapError(err)
	}
	if int(resp.Accepted) != len(recs) {
		return fmt.Errorf("server accepted %d of %d recordings", resp.Accepted, len(recs))
	}
	return nil
}

func (c *GRPCClient) GetRecordings(ctx context.Context, ids []string) ([]models.Recording, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetRecordings(ctx, &pb.GetRecordingsRequest{Ids: ids})
	if err != nil {
		return nil, c.mapError(err)
	}
	out := make([]models.Recording, 0, len(resp.Recordings))
	for _, r := range resp.Recordings {
		out = append(out, recordingFromProto(r))
	}
	return out, nil
}

func (c *GRPCClient) ListBookmarks(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListBookmarks(ctx, &pb.ListBookmarksRequest{UserId: userID})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.RecordingIds, nil
}

func (c *GRPCClient) BookmarkExists(ctx context.Context, userID, recordingID string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.BookmarkExists(ctx, &pb.BookmarkRequest{UserId: userID, RecordingId: recordingID})
	if err != nil {
		return false, c.mapError(err)
	}
	return resp.Exists, nil
}

func (c *GRPCClient) AddBookmark(ctx context.Context, userID, recordingID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.client.AddBookmark(ctx, &pb.BookmarkRequest{UserId: userID, RecordingId: recordingID})
	return c.mapError(err)
}

func (c *GRPCClient) RemoveBookmark(ctx context.Context, userID, recordingID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.client.RemoveBookmark(ctx, &pb.BookmarkRequest{UserId: userID, RecordingId: recordingID})
	return c.mapError(err)
}
