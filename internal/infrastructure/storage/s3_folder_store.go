package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	quotePrefix = "COT"
	orderPrefix = "PED"
)

var invalidFolderChars = regexp.MustCompile(`[\/\\:*?"<>|]`)
var multiSpace = regexp.MustCompile(`\s+`)

// S3FolderStore keeps the per-project folder structure in an S3 bucket.
//
// A "folder" is a zero-byte marker object whose key ends with "/". The
// engine only needs existence and rename semantics; rename is copy+delete
// since S3 has no native rename.
//
// Env vars:
//   - S3_BUCKET (default: projetos)
//   - S3_BASE_PREFIX (default: pastas)
//   - S3_ENDPOINT (optional, for localstack/minio)

type S3FolderStore struct {
	client     *s3.Client
	bucket     string
	basePrefix string
}

var _ interfaces.IFolderLifecycle = (*S3FolderStore)(nil)

func NewS3FolderStore(ctx context.Context) (*S3FolderStore, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3FolderStore{
		client:     client,
		bucket:     getenvDefault("S3_BUCKET", "projetos"),
		basePrefix: strings.Trim(getenvDefault("S3_BASE_PREFIX", "pastas"), "/"),
	}, nil
}

// cleanFolderName strips characters the folder naming scheme forbids and
// collapses repeated whitespace.
func cleanFolderName(s string) string {
	s = invalidFolderChars.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// folderName renders "<code> COT <client> - <desc>" (PED when isOrder).
func folderName(code, client, description string, isOrder bool) string {
	prefix := quotePrefix
	if isOrder {
		prefix = orderPrefix
	}
	name := code + " " + prefix
	if c := cleanFolderName(client); c != "" {
		name += " " + c
	}
	if d := cleanFolderName(description); d != "" {
		name += " - " + d
	}
	return name
}

func (s *S3FolderStore) key(name string) string {
	return s.basePrefix + "/" + name + "/"
}

// EnsureProjectFolder creates the project folder marker if no folder for the
// code exists yet and returns the folder name in effect. An existing folder
// keeps its current name: an order folder is never demoted back to a quote.
func (s *S3FolderStore) EnsureProjectFolder(ctx context.Context, code, client, description, date string, isOrder bool) (string, error) {
	existing, err := s.findByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	name := folderName(code, client, description, isOrder)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(nil),
	})
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}
	log.Printf("[storage][s3] folder created name=%q", name)
	return name, nil
}

// PromoteToOrder renames the project's COT folder to PED. Returns false with
// nil error when no folder exists for the code; already-PED folders are a
// successful no-op.
func (s *S3FolderStore) PromoteToOrder(ctx context.Context, code string) (bool, error) {
	existing, err := s.findByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if existing == "" {
		return false, nil
	}
	if strings.Contains(existing, " "+orderPrefix+" ") || strings.HasSuffix(existing, " "+orderPrefix) {
		return true, nil
	}

	renamed := strings.Replace(existing, " "+quotePrefix, " "+orderPrefix, 1)
	src := s.bucket + "/" + s.key(existing)
	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(src),
		Key:        aws.String(s.key(renamed)),
	})
	if err != nil {
		return false, fmt.Errorf("copy folder marker %q: %w", existing, err)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(existing)),
	})
	if err != nil {
		return false, fmt.Errorf("delete folder marker %q: %w", existing, err)
	}
	log.Printf("[storage][s3] folder promoted from=%q to=%q", existing, renamed)
	return true, nil
}

// findByCode returns the name of the folder whose key starts with the project
// code, "" when none exists.
func (s *S3FolderStore) findByCode(ctx context.Context, code string) (string, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.basePrefix + "/" + code + " "),
	})
	if err != nil {
		return "", fmt.Errorf("list folders for code %q: %w", code, err)
	}
	for _, obj := range out.Contents {
		name := strings.TrimPrefix(aws.ToString(obj.Key), s.basePrefix+"/")
		name = strings.TrimSuffix(name, "/")
		if name != "" {
			return name, nil
		}
	}
	return "", nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
