package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentRepositoryStartsEmpty(t *testing.T) {
	repo := NewDocumentRepository()

	assert.Empty(t, repo.SelectedPath())
	assert.Empty(t, repo.SelectedName())
	assert.Nil(t, repo.Document())
	assert.Empty(t, repo.Text())
	assert.False(t, repo.HasText())
}

func TestDocumentRepositoryReplacesWholesale(t *testing.T) {
	repo := NewDocumentRepository()

	repo.SetDocument(&EncodedDocument{SourcePath: "/tmp/a.bin", Text: "YQ==", MIMEType: "text/plain"})
	repo.SetDocument(&EncodedDocument{SourcePath: "/tmp/b.bin", Text: "Yg=="})

	doc := repo.Document()
	assert.Equal(t, "/tmp/b.bin", doc.SourcePath)
	assert.Equal(t, "Yg==", repo.Text())
	assert.Empty(t, doc.MIMEType)
}

func TestDocumentRepositorySelectionIsIndependent(t *testing.T) {
	repo := NewDocumentRepository()
	repo.SetDocument(&EncodedDocument{SourcePath: "/data/first.png", Text: "AAAA"})

	repo.SelectPath("/data/second.png")

	assert.Equal(t, "second.png", repo.SelectedName())
	assert.Equal(t, "AAAA", repo.Text())
}

func TestDocumentRepositoryShutdownClears(t *testing.T) {
	repo := NewDocumentRepository()
	repo.SelectPath("/data/x")
	repo.SetDocument(&EncodedDocument{Text: "eA=="})

	repo.Shutdown()

	assert.Empty(t, repo.SelectedPath())
	assert.False(t, repo.HasText())
}

func TestEncodedDocumentSummary(t *testing.T) {
	tests := []struct {
		name string
		doc  EncodedDocument
		want string
	}{
		{
			name: "empty file",
			doc:  EncodedDocument{},
			want: "Converted: 0.0 KB → 0 characters",
		},
		{
			name: "with mime type",
			doc:  EncodedDocument{Size: 3072, Text: "abcd", MIMEType: "image/png"},
			want: "Converted: 3.0 KB → 4 characters (image/png)",
		},
		{
			name: "rounds to one decimal",
			doc:  EncodedDocument{Size: 1500, Text: "abcdefgh"},
			want: "Converted: 1.5 KB → 8 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.Summary())
		})
	}
}
