package client

import (
	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	pb "github.com/dmitrijs2005/voicearchive/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func userFromProto(p *pb.Profile) models.User {
	return models.User{ID: p.GetId(), Name: p.GetName(), Email: p.GetEmail(), PhotoURL: p.GetPhotoUrl(), IsLoggedIn: true}
}

func recordingToProto(r models.Recording) *pb.Recording {
	var tr map[string]string
	if len(r.Translations) > 0 {
		tr = make(map[string]string, len(r.Translations))
		for k, v := range r.Translations {
			tr[string(k)] = v
		}
	}
	out := &pb.Recording{
		Id:              r.ID,
		UserId:          r.UserID,
		Title:           r.Title,
		ContentType:     string(r.ContentType),
		AudioKey:        r.AudioURL,
		Duration:        int32(r.Duration),
		Language:        r.Language,
		Speaker:         r.Speaker,
		Tribe:           r.Tribe,
		Region:          r.Region,
		Transcription:   r.Transcription,
		Translations:    tr,
		ThreadTitle:     r.ThreadTitle,
		PartNumber:      r.PartNumber,
		PartDescription: r.PartDescription,
	}
	if !r.Date.IsZero() {
		out.Date = timestamppb.New(r.Date)
	}
	return out
}

// recordingFromProto returns remote recordings as synced; bookmark and
// follow flags are local display state and start false.
func recordingFromProto(p *pb.Recording) models.Recording {
	var tr map[models.TranslationLanguage]string
	if len(p.GetTranslations()) > 0 {
		tr = make(map[models.TranslationLanguage]string, len(p.GetTranslations()))
		for k, v := range p.GetTranslations() {
			tr[models.TranslationLanguage(k)] = v
		}
	}
	rec := models.Recording{
		ID:              p.GetId(),
		UserID:          p.GetUserId(),
		Title:           p.GetTitle(),
		ContentType:     models.ContentType(p.GetContentType()),
		AudioURL:        p.GetAudioKey(),
		Duration:        int(p.GetDuration()),
		Language:        p.GetLanguage(),
		Speaker:         p.GetSpeaker(),
		Tribe:           p.GetTribe(),
		Region:          p.GetRegion(),
		Transcription:   p.GetTranscription(),
		Translations:    tr,
		SyncStatus:      models.SyncStatusSynced,
		ThreadTitle:     p.GetThreadTitle(),
		PartNumber:      p.GetPartNumber(),
		PartDescription: p.GetPartDescription(),
	}
	if p.GetDate() != nil {
		rec.Date = p.GetDate().AsTime()
	}
	return rec
}
