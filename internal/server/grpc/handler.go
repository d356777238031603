package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	pb "github.com/dmitrijs2005/voicearchive/internal/proto"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/dmitrijs2005/voicearchive/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// toStatus maps service errors to gRPC status codes. Anything unexpected
// becomes Internal without leaking details.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func authResponse(sess *services.Session) *pb.AuthResponse {
	return &pb.AuthResponse{
		Profile:      profileToProto(sess.Profile),
		AccessToken:  sess.Tokens.AccessToken,
		RefreshToken: sess.Tokens.RefreshToken,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	sess, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "Registered", "user", sess.Profile.ID)
	return authResponse(sess), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	sess, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return authResponse(sess), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.users.UpdateProfile(ctx, userID, req.Name, req.PhotoUrl)
	if err != nil {
		return nil, toStatus(err)
	}
	return profileToProto(p), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteAccount(ctx, userID); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) PrepareAudioUpload(ctx context.Context, req *pb.PrepareAudioUploadRequest) (*pb.PrepareAudioUploadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.recordings.PrepareAudioUpload(ctx, userID, req.RecordingId, req.ContentType)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PrepareAudioUploadResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) PushRecordings(ctx context.Context, req *pb.PushRecordingsRequest) (*pb.PushRecordingsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]*models.Recording, 0, len(req.Recordings))
	for _, r := range req.Recordings {
		recs = append(recs, recordingFromProto(r))
	}
	n, err := s.recordings.PushRecordings(ctx, userID, recs)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PushRecordingsResponse{Accepted: int32(n)}, nil
}

// GetRecordings answers in the order of the requested ids, skipping ids
// that do not exist.
func (s *GRPCServer) GetRecordings(ctx context.Context, req *pb.GetRecordingsRequest) (*pb.GetRecordingsResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}
	recs, err := s.recordings.GetRecordings(ctx, req.Ids)
	if err != nil {
		return nil, toStatus(err)
	}

	byID := make(map[string]*models.Recording, len(recs))
	for _, r := range recs {
		byID[r.ID] = r
	}
	out := make([]*pb.Recording, 0, len(recs))
	for _, id := range req.Ids {
		if r, ok := byID[id]; ok {
			out = append(out, recordingToProto(r))
			delete(byID, id)
		}
	}
	return &pb.GetRecordingsResponse{Recordings: out}, nil
}

func (s *GRPCServer) ListBookmarks(ctx context.Context, req *pb.ListBookmarksRequest) (*pb.ListBookmarksResponse, error) {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.bookmarks.List(ctx, callerID, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListBookmarksResponse{RecordingIds: ids}, nil
}

func (s *GRPCServer) BookmarkExists(ctx context.Context, req *pb.BookmarkRequest) (*pb.BookmarkExistsResponse, error) {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.bookmarks.Exists(ctx, callerID, req.UserId, req.RecordingId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BookmarkExistsResponse{Exists: ok}, nil
}

func (s *GRPCServer) AddBookmark(ctx context.Context, req *pb.BookmarkRequest) (*emptypb.Empty, error) {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.bookmarks.Add(ctx, callerID, req.UserId, req.RecordingId); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RemoveBookmark(ctx context.Context, req *pb.BookmarkRequest) (*emptypb.Empty, error) {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.bookmarks.Remove(ctx, callerID, req.UserId, req.RecordingId); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
