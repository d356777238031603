package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	Client

	uploadURL string
	prepared  []string
	pushed    []models.Recording
	pushErr   error
}

func (f *fakeClient) PrepareAudioUpload(ctx context.Context, recordingID, contentType string) (string, string, error) {
	f.prepared = append(f.prepared, recordingID)
	return "audio/" + recordingID + ".wav", f.uploadURL + "/" + recordingID, nil
}

func (f *fakeClient) PushRecordings(ctx context.Context, recs []models.Recording) error {
	f.pushed = append(f.pushed, recs...)
	return f.pushErr
}

func TestUploader_UploadsLocalAudioThenPushes(t *testing.T) {
	var uploaded = map[string]string{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		uploaded[r.URL.Path] = string(b)
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	fc := &fakeClient{uploadURL: ts.URL}
	u := NewUploader(fc, ts.Client())

	keys, err := u.Push(context.Background(), []models.Recording{
		{ID: "r1", AudioURL: path},
		{ID: "r2", AudioURL: "audio/r2.wav"},
		{ID: "r3"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"r1": "audio/r1.wav"}, keys)
	assert.Equal(t, []string{"r1"}, fc.prepared)
	assert.Equal(t, "RIFF", uploaded["/r1"])

	require.Len(t, fc.pushed, 3)
	assert.Equal(t, "audio/r1.wav", fc.pushed[0].AudioURL)
	assert.Equal(t, "audio/r2.wav", fc.pushed[1].AudioURL)
	assert.Empty(t, fc.pushed[2].AudioURL)
}

func TestUploader_FailedUploadSkipsPush(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	fc := &fakeClient{uploadURL: ts.URL}
	_, err := NewUploader(fc, ts.Client()).Push(context.Background(), []models.Recording{{ID: "r1", AudioURL: path}})
	require.Error(t, err)
	assert.Empty(t, fc.pushed)
}

func TestUploader_PushErrorPropagates(t *testing.T) {
	fc := &fakeClient{pushErr: ErrUnavailable}
	_, err := NewUploader(fc, nil).Push(context.Background(), []models.Recording{{ID: "r1"}})
	require.True(t, errors.Is(err, ErrUnavailable))
}

func TestUploader_UsesUploadSeam(t *testing.T) {
	orig := uploadFn
	t.Cleanup(func() { uploadFn = orig })

	var gotType string
	uploadFn = func(ctx context.Context, c *http.Client, url, contentType string, data []byte) error {
		gotType = contentType
		return nil
	}

	path := filepath.Join(t.TempDir(), "take.wav")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewUploader(&fakeClient{}, nil).Push(context.Background(), []models.Recording{{ID: "r1", AudioURL: path}})
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", gotType)
}
