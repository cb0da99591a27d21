package cloudwriter

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

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type fakeS3 struct {
	objects map[string][]byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3WriterUploadsOnClose(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}
	factory := NewS3WriterFactoryWithClient(client, "catalog", "snapshots/2026")

	w, err := factory.NewWriter("restaurants/restaurants_pizza.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("name,category\n"))
	require.NoError(t, err)
	assert.Empty(t, client.objects)

	require.NoError(t, w.Close())
	assert.Equal(t, []byte("name,category\n"), client.objects["catalog/snapshots/2026/restaurants/restaurants_pizza.csv"])
	assert.Equal(t, "s3://catalog/snapshots/2026/metadata.json", factory.Location("metadata.json"))
}

func TestS3WriterReportsUploadFailure(t *testing.T) {
	factory := NewS3WriterFactoryWithClient(&fakeS3{err: errors.New("access denied")}, "catalog", "")
	w, err := factory.NewWriter("metadata.json")
	require.NoError(t, err)
	assert.ErrorContains(t, w.Close(), "access denied")
}

func TestLocalWriterCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	factory, err := New(models.ExportConfig{Destination: "local", Dir: dir})
	require.NoError(t, err)

	w, err := factory.NewWriter("products/products_pizza-palace.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "products", "products_pizza-palace.csv"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestNewRejectsIncompleteS3Config(t *testing.T) {
	_, err := New(models.ExportConfig{Destination: "s3"})
	assert.Error(t, err)
	_, err = New(models.ExportConfig{Destination: "ftp"})
	assert.Error(t, err)
}
