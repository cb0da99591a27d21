package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of the S3 client the writers use.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Writer struct {
	client     PutObjectAPI
	bucket     string
	objectPath string
	buffer     bytes.Buffer
}

type S3WriterFactory struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3WriterFactory(region, bucket, prefix string) (*S3WriterFactory, error) {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return NewS3WriterFactoryWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func NewS3WriterFactoryWithClient(client PutObjectAPI, bucket, prefix string) *S3WriterFactory {
	return &S3WriterFactory{client: client, bucket: bucket, prefix: prefix}
}

func (f *S3WriterFactory) NewWriter(objectPath string) (CloudWriter, error) {
	return &S3Writer{
		client:     f.client,
		bucket:     f.bucket,
		objectPath: f.key(objectPath),
	}, nil
}

func (f *S3WriterFactory) Location(objectPath string) string {
	return fmt.Sprintf("s3://%s/%s", f.bucket, f.key(objectPath))
}

func (f *S3WriterFactory) key(objectPath string) string {
	if f.prefix == "" {
		return objectPath
	}
	return path.Join(f.prefix, objectPath)
}

func (w *S3Writer) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

// Close uploads everything written so far as a single object.
func (w *S3Writer) Close() error {
	ctx := context.Background()
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.objectPath),
		Body:   bytes.NewReader(w.buffer.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", w.objectPath, err)
	}
	return nil
}
