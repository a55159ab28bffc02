package oss

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(1024))
	assert.NoError(t, ValidateSize(MaxUploadSize))
	assert.ErrorIs(t, ValidateSize(MaxUploadSize+1), ErrFileTooLarge)
}

func TestValidateDir(t *testing.T) {
	for _, dir := range []string{"sermons", "events", "blog"} {
		assert.NoError(t, ValidateDir(dir))
	}
	assert.ErrorIs(t, ValidateDir("avatars"), ErrBadDirectory)
	assert.ErrorIs(t, ValidateDir(""), ErrBadDirectory)
	assert.ErrorIs(t, ValidateDir("../etc"), ErrBadDirectory)
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("sermons", "Sunday Message.MP3")
	assert.Regexp(t, regexp.MustCompile(`^sermons/\d+-[0-9a-f]{8}\.mp3$`), key)

	// two keys for the same file must differ
	assert.NotEqual(t, key, BuildObjectKey("sermons", "Sunday Message.MP3"))

	noExt := BuildObjectKey("blog", "README")
	assert.Regexp(t, regexp.MustCompile(`^blog/\d+-[0-9a-f]{8}$`), noExt)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "photo.webp", replaceExt("photo.jpg", ".webp"))
	assert.Equal(t, "archive.tar.webp", replaceExt("archive.tar.gz", ".webp"))
	assert.Equal(t, "noext.webp", replaceExt("noext", ".webp"))
}

func TestPublicURL(t *testing.T) {
	s := &Service{Endpoint: "https://oss-ap-southeast-1.aliyuncs.com", BucketName: "church-media"}
	assert.Equal(t,
		"https://church-media.oss-ap-southeast-1.aliyuncs.com/events/123-abcd.webp",
		s.PublicURL("events/123-abcd.webp"))

	bare := &Service{Endpoint: "oss-ap-southeast-1.aliyuncs.com", BucketName: "church-media"}
	assert.Equal(t,
		"https://church-media.oss-ap-southeast-1.aliyuncs.com/k",
		bare.PublicURL("k"))
}
