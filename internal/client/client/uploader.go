package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/netx"
)

const audioContentType = "audio/wav"

// uploadFn is a seam for tests.
var uploadFn = netx.UploadToPresignedURL

// Uploader moves a batch of recordings to the server.
type Uploader struct {
	client Client
	http   *http.Client
}

func NewUploader(c Client, httpClient *http.Client) *Uploader {
	return &Uploader{client: c, http: httpClient}
}

// Push uploads every recording whose audio is still a local file, then
// sends the whole batch in one call. The returned map holds the object key
// now backing each uploaded recording's audio.
func (u *Uploader) Push(ctx context.Context, recs []models.Recording) (map[string]string, error) {
	keys := make(map[string]string)
	batch := make([]models.Recording, 0, len(recs))

	for _, r := range recs {
		if isLocalFile(r.AudioURL) {
			key, err := u.uploadAudio(ctx, r)
			if err != nil {
				return nil, fmt.Errorf("upload audio for %s: %w", r.ID, err)
			}
			keys[r.ID] = key
			r.AudioURL = key
		}
		batch = append(batch, r)
	}

	if err := u.client.PushRecordings(ctx, batch); err != nil {
		return nil, err
	}
	return keys, nil
}

func (u *Uploader) uploadAudio(ctx context.Context, r models.Recording) (string, error) {
	data, err := os.ReadFile(r.AudioURL)
	if err != nil {
		return "", err
	}
	key, url, err := u.client.PrepareAudioUpload(ctx, r.ID, audioContentType)
	if err != nil {
		return "", err
	}
	if err := uploadFn(ctx, u.http, url, audioContentType, data); err != nil {
		return "", err
	}
	return key, nil
}

func isLocalFile(p string) bool {
	if p == "" || !filepath.IsAbs(p) {
		return false
	}
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
