package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioFile_FileSizeHuman(t *testing.T) {
	size := func(n int64) *int64 { return &n }

	tests := []struct {
		size *int64
		want string
	}{
		{nil, "Unknown"},
		{size(0), "Unknown"},
		{size(512), "512 B"},
		{size(1536), "1.5 KB"},
		{size(1048576), "1 MB"},
		{size(3 * 1024 * 1024 * 1024), "3 GB"},
		{size(1234567), "1.18 MB"},
	}

	for _, tt := range tests {
		a := AudioFile{FileSize: tt.size}
		assert.Equal(t, tt.want, a.FileSizeHuman())
	}
}
