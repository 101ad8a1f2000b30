package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/config/configs"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Put(t *testing.T) {
	client := &fakePutter{}
	s := NewS3WithClient(client, "images", "https://cdn.example/")

	url, err := s.Put(context.Background(), "campaigns/c-1/image-0.png", []byte("png"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/campaigns/c-1/image-0.png", url)
	assert.Equal(t, "images", aws.ToString(client.input.Bucket))
	assert.Equal(t, "campaigns/c-1/image-0.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, []byte("png"), client.body)
}

func TestS3PutError(t *testing.T) {
	s := NewS3WithClient(&fakePutter{err: errors.New("access denied")}, "images", "https://cdn.example")

	_, err := s.Put(context.Background(), "k.png", nil, "image/png")
	assert.ErrorContains(t, err, "access denied")
}

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "http://localhost:8080/files")
	require.NoError(t, err)

	url, err := l.Put(context.Background(), "campaigns/c-1/image-1.png", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/campaigns/c-1/image-1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "campaigns", "c-1", "image-1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestLocalRejectsTraversal(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	_, err = l.Put(context.Background(), "../escape.png", []byte("x"), "image/png")
	assert.Error(t, err)
}

func TestNewSelectsDriver(t *testing.T) {
	got, err := New(context.Background(), configs.Storage{Driver: "local", LocalDir: t.TempDir(), PublicDomain: "http://x"})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, got)

	_, err = New(context.Background(), configs.Storage{Driver: "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), configs.Storage{Driver: "s3"})
	assert.ErrorContains(t, err, "STORAGE_BUCKET")
}
