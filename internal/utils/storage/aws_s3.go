package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	AllowImage    = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/heic"}
	AllowDocument = []string{"application/pdf"}
)

const requestTimeout = 30 * time.Second

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() (AwsS3, error) {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" || region == "" {
		return nil, domain.ErrStorageUnavailable
	}

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// DetectContentType sniffs the file content and checks it against allowTypes.
// An empty allow list accepts anything.
func DetectContentType(r io.Reader, allowTypes ...string) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, err
	}
	if len(allowTypes) > 0 && !mimetype.EqualsAny(mtype.String(), allowTypes...) {
		return nil, domain.ErrFileTypeNotAllowed
	}
	return mtype, nil
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader, allowTypes ...string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mtype, err := DetectContentType(src, allowTypes...)
	if err != nil {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if path.Ext(objectKey) == "" {
		objectKey += mtype.Extension()
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentType:   aws.String(mtype.String()),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return objectKey, nil
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	if fileName == "" {
		fileName = uuid.NewString()
	}
	return a.put(path.Join(folder, fileName), file, allowTypes...)
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowTypes ...string) (string, error) {
	return a.put(objectKey, file, allowTypes...)
}

func (a *awsS3) DeleteFile(objectKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, a.baseURL()) {
		return ""
	}
	return strings.TrimPrefix(link, a.baseURL())
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.baseURL() + objectKey
}
