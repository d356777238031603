package grpc

import (
	pb "github.com/dmitrijs2005/voicearchive/internal/proto"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func profileToProto(p *models.Profile) *pb.Profile {
	return &pb.Profile{Id: p.ID, Name: p.Name, Email: p.Email, PhotoUrl: p.PhotoURL}
}

func recordingFromProto(r *pb.Recording) *models.Recording {
	rec := &models.Recording{
		ID:              r.GetId(),
		UserID:          r.GetUserId(),
		Title:           r.GetTitle(),
		ContentType:     r.GetContentType(),
		AudioKey:        r.GetAudioKey(),
		Duration:        int(r.GetDuration()),
		Language:        r.GetLanguage(),
		Speaker:         r.GetSpeaker(),
		Tribe:           r.GetTribe(),
		Region:          r.GetRegion(),
		Transcription:   r.GetTranscription(),
		Translations:    r.GetTranslations(),
		ThreadTitle:     r.GetThreadTitle(),
		PartNumber:      r.GetPartNumber(),
		PartDescription: r.GetPartDescription(),
	}
	if r.GetDate() != nil {
		rec.Date = r.GetDate().AsTime()
	}
	return rec
}

func recordingToProto(r *models.Recording) *pb.Recording {
	out := &pb.Recording{
		Id:              r.ID,
		UserId:          r.UserID,
		Title:           r.Title,
		ContentType:     r.ContentType,
		AudioKey:        r.AudioKey,
		Duration:        int32(r.Duration),
		Language:        r.Language,
		Speaker:         r.Speaker,
		Tribe:           r.Tribe,
		Region:          r.Region,
		Transcription:   r.Transcription,
		Translations:    r.Translations,
		ThreadTitle:     r.ThreadTitle,
		PartNumber:      r.PartNumber,
		PartDescription: r.PartDescription,
	}
	if !r.Date.IsZero() {
		out.Date = timestamppb.New(r.Date)
	}
	return out
}
