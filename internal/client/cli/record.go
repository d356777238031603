package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
)

const recordHelp = "Commands: (p)ause, (r)esume, (s)top and save, (x) discard, Enter refreshes the timer"

// Record captures one clip and, once stopped, asks for its metadata and
// stores it as a local recording. The content type comes from args or a
// prompt.
func (a *App) Record(ctx context.Context, args []string) error {
	sess := a.session()
	if !sess.Active() {
		return common.ErrUnauthenticated
	}

	raw, err := argOrPrompt(a, args, "Content type (word, story, song)")
	if err != nil {
		return err
	}
	ct, err := models.ParseContentType(raw)
	if err != nil {
		return err
	}

	if err := a.capture.Start(ctx, ct); err != nil {
		return err
	}
	fmt.Fprintln(a.out, recordHelp)

	for {
		cmd, err := getSimpleText(a.reader, "["+captureStatus(a.capture.State())+"]", a.out)
		if err != nil {
			_ = a.capture.Reset()
			return err
		}

		switch strings.ToLower(cmd) {
		case "":
		case "p", "pause":
			err = a.capture.Pause()
		case "r", "resume":
			err = a.capture.Resume()
		case "x", "discard":
			if err := a.capture.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Discarded")
			return nil
		case "s", "stop":
			if err := a.capture.Stop(); err != nil {
				return err
			}
			return a.saveCapture(ctx, sess.User.ID)
		default:
			fmt.Fprintln(a.out, recordHelp)
		}
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}

// saveCapture turns the finished capture into a recording. Declining or
// failing discards the blob.
func (a *App) saveCapture(ctx context.Context, ownerID string) error {
	st := a.capture.State()
	fmt.Fprintf(a.out, "Captured %s (%d bytes)\n", formatDuration(st.Duration), st.Size)

	keep, err := Confirm(a.reader, "Save this recording?", a.out)
	if err != nil || !keep {
		if rerr := a.capture.Reset(); rerr != nil {
			a.log.Warn(ctx, "discard capture", "error", rerr)
		}
		return err
	}

	data, err := a.promptRecordingData(st.ContentType)
	if err == nil {
		data.AudioURL = st.FilePath
		data.Duration = st.Duration
		var rec models.Recording
		rec, err = a.recordings.Add(ctx, data, ownerID)
		if err == nil {
			a.capture.Detach()
			fmt.Fprintf(a.out, "Saved %q as %s\n", rec.Title, rec.ID)
			return nil
		}
	}

	if rerr := a.capture.Reset(); rerr != nil {
		a.log.Warn(ctx, "discard capture", "error", rerr)
	}
	return err
}

func (a *App) promptRecordingData(ct models.ContentType) (models.RecordingData, error) {
	data := models.RecordingData{ContentType: ct}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &data.Title},
		{"Language", &data.Language},
		{"Speaker", &data.Speaker},
		{"Tribe", &data.Tribe},
		{"Region", &data.Region},
		{"Thread title (empty for none)", &data.ThreadTitle},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return data, err
		}
		*f.dst = v
	}

	if data.ThreadTitle != "" {
		var err error
		if data.PartNumber, err = getSimpleText(a.reader, "Part number", a.out); err != nil {
			return data, err
		}
		if data.PartDescription, err = getSimpleText(a.reader, "Part description", a.out); err != nil {
			return data, err
		}
	}

	transcription, err := GetMultiline(a.reader, "Transcription", a.out)
	if err != nil {
		return data, err
	}
	data.Transcription = transcription

	translations, err := a.promptTranslations()
	if err != nil {
		return data, err
	}
	for l, text := range translations {
		if text == "" {
			delete(translations, l)
		}
	}
	data.Translations = translations
	return data, data.Validate()
}

func (a *App) promptTranslations() (map[models.TranslationLanguage]string, error) {
	raw, err := GetTranslations(a.reader, a.out)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[models.TranslationLanguage]string, len(raw))
	for l, text := range raw {
		out[models.TranslationLanguage(l)] = text
	}
	return out, nil
}
