package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/filex"
)

// List prints the recordings matching every filter given as arguments,
// e.g. "list type=song tribe=santal thread".
func (a *App) List(ctx context.Context, args []string) error {
	filters := make([]models.Filter, 0, len(args))
	for _, arg := range args {
		f, err := models.ParseFilter(arg)
		if err != nil {
			return err
		}
		filters = append(filters, f)
	}
	renderRecordings(a.out, a.recordings.List(ctx, filters...))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := argOrPrompt(a, args, "Enter recording id to show")
	if err != nil {
		return err
	}
	rec, err := a.recordings.MustGet(ctx, id)
	if err != nil {
		return err
	}
	renderRecording(a.out, rec)
	return nil
}

// Edit walks through the editable fields of a recording. An empty answer
// keeps the current value and "-" clears it.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := argOrPrompt(a, args, "Enter recording id to edit")
	if err != nil {
		return err
	}
	rec, err := a.recordings.MustGet(ctx, id)
	if err != nil {
		return err
	}

	var patch models.RecordingPatch
	fields := []struct {
		name    string
		current string
		dst     **string
	}{
		{"Title", rec.Title, &patch.Title},
		{"Language", rec.Language, &patch.Language},
		{"Speaker", rec.Speaker, &patch.Speaker},
		{"Tribe", rec.Tribe, &patch.Tribe},
		{"Region", rec.Region, &patch.Region},
		{"Transcription", rec.Transcription, &patch.Transcription},
		{"Thread title", rec.ThreadTitle, &patch.ThreadTitle},
		{"Part number", rec.PartNumber, &patch.PartNumber},
		{"Part description", rec.PartDescription, &patch.PartDescription},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.name, f.current), a.out)
		if err != nil {
			return err
		}
		switch v {
		case "":
		case "-":
			empty := ""
			*f.dst = &empty
		default:
			*f.dst = &v
		}
	}

	ct, err := getSimpleText(a.reader, fmt.Sprintf("Content type [%s]", rec.ContentType), a.out)
	if err != nil {
		return err
	}
	if ct != "" {
		parsed, err := models.ParseContentType(ct)
		if err != nil {
			return err
		}
		patch.ContentType = &parsed
	}

	if patch.Translations, err = a.promptTranslations(); err != nil {
		return err
	}

	if err := a.recordings.Update(ctx, id, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated")
	return nil
}

// Delete removes a recording after confirmation. The audio of a recording
// that never left this device is removed with it.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := argOrPrompt(a, args, "Enter recording id to delete")
	if err != nil {
		return err
	}
	rec, ok := a.recordings.Get(ctx, id)
	if !ok {
		return common.ErrorNotFound
	}

	sure, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", rec.Title), a.out)
	if err != nil || !sure {
		return err
	}
	if err := a.recordings.Delete(ctx, id); err != nil {
		return err
	}

	if rec.SyncStatus == models.SyncStatusLocal && filepath.IsAbs(rec.AudioURL) {
		if err := filex.RemoveIfExists(rec.AudioURL); err != nil {
			a.log.Warn(ctx, "remove audio", "path", rec.AudioURL, "error", err)
		}
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) Threads(ctx context.Context) error {
	renderThreads(a.out, a.recordings.Threads(ctx))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	renderStats(a.out, a.recordings.Stats(ctx))
	return nil
}
