// file: internals/helpers/oss/oss_client.go
package oss

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// MaxUploadSize is enforced before any byte leaves the process.
const MaxUploadSize = int64(50 * 1024 * 1024)

// Upload directories inside the bucket, one per content category.
var allowedDirs = map[string]struct{}{
	"sermons": {},
	"events":  {},
	"blog":    {},
}

var (
	ErrFileTooLarge = errors.New("file exceeds 50MB limit")
	ErrBadDirectory = errors.New("unknown upload directory")
)

type Service struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewServiceFromEnv builds the OSS client from OSS_ENDPOINT / OSS_ACCESS_KEY /
// OSS_SECRET_KEY / OSS_BUCKET.
func NewServiceFromEnv() (*Service, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY")
	sk := getEnv("OSS_SECRET_KEY")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, errors.New("OSS env incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if strings.Contains(err.Error(), "AccessDenied") {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s)", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &Service{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
	}, nil
}

// ValidateSize gates the upload before any network transfer.
func ValidateSize(size int64) error {
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateDir rejects uploads aimed outside the known category directories.
func ValidateDir(dir string) error {
	if _, ok := allowedDirs[dir]; !ok {
		return ErrBadDirectory
	}
	return nil
}

// UploadFromFormFile stores a multipart file under dir/ and returns the
// public URL. Images are recompressed to webp first; everything else is
// streamed as-is. The object key is collision-resistant on its own, so no
// existence check is made.
func (s *Service) UploadFromFormFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if err := ValidateDir(dir); err != nil {
		return "", err
	}
	if err := ValidateSize(fh.Size); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open form file: %w", err)
	}
	defer src.Close()

	contentType, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", err
	}

	filename := fh.Filename
	if isConvertibleImage(contentType) {
		webpData, convErr := convertToWebP(reader, fh.Filename)
		if convErr != nil {
			log.Printf("[OSS] webp conversion failed (%v), uploading original", convErr)
		} else {
			filename = replaceExt(fh.Filename, ".webp")
			key := BuildObjectKey(dir, filename)
			if err := s.putBytes(ctx, key, webpData, "image/webp"); err != nil {
				return "", err
			}
			return s.PublicURL(key), nil
		}
	}

	key := BuildObjectKey(dir, filename)
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.WithContext(ctx),
	}
	if err := s.Bucket.PutObject(key, reader, opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *Service) putBytes(ctx context.Context, key string, data []byte, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.WithContext(ctx),
	}
	if err := s.Bucket.PutObject(key, strings.NewReader(string(data)), opts...); err != nil {
		return fmt.Errorf("oss put: %w", err)
	}
	return nil
}

// DeleteObject removes a stored file. Content records keep their URL even if
// this is never called; upload URLs carry no referential integrity.
func (s *Service) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

// PublicURL builds the virtual-hosted URL for an object key.
func (s *Service) PublicURL(key string) string {
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// BuildObjectKey makes a flat, collision-resistant name:
// <dir>/<unix-ms>-<8 hex>.<ext>
func BuildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", dir, time.Now().UnixMilli(), randHex(4), ext)
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func replaceExt(filename, newExt string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + newExt
}

func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", nil, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]

	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		if byExt := mimeByExt(filename); byExt != "" {
			ct = byExt
		}
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", nil, err
		}
		return ct, src, nil
	}
	return ct, io.MultiReader(strings.NewReader(string(head)), src), nil
}

func mimeByExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return "audio/mpeg"
	case ".mp4":
		return "video/mp4"
	case ".pdf":
		return "application/pdf"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
