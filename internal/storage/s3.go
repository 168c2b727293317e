package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/salusbook/api-prenotazioni/internal/config"
)

// PhotoStore guarda as fotos de perfil dos profissionais em um bucket
// S3 (ou compatível) e devolve a URL pública.
type PhotoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &PhotoStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

// UploadProfessionalPhoto normaliza a imagem e sobe para o bucket; o
// key é determinístico por profissional, então um novo upload substitui
// a foto anterior.
func (p *PhotoStore) UploadProfessionalPhoto(
	ctx context.Context,
	professionalID uint,
	raw []byte,
) (string, error) {

	normalized, err := NormalizePhoto(raw)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("professionals/%d/photo.webp", professionalID)

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(normalized),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", p.publicURL, key), nil
}
