package toolkit

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := SplitGoogleStoragePath("gs://my-bucket/run1/S1_L001_A_R1_001.fastq.gz")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || object != "run1/S1_L001_A_R1_001.fastq.gz" {
		t.Errorf("unexpected split: %q %q", bucket, object)
	}

	for _, bad := range []string{"gs://", "gs://bucket-only", "gs:///object"} {
		if _, _, err := SplitGoogleStoragePath(bad); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}

func TestMaybeOpenFromGoogleStorageRequiresClient(t *testing.T) {
	if _, err := MaybeOpenFromGoogleStorage(context.Background(), "gs://b/o", nil); err == nil {
		t.Fatal("expected an error without a storage client")
	}
}

func TestNewStorageClientIfNeededSkipsLocalPaths(t *testing.T) {
	client, err := NewStorageClientIfNeeded(context.Background(), "a.fastq.gz", "/data/b.fastq.gz")
	if err != nil {
		t.Fatal(err)
	}
	if client != nil {
		t.Fatal("expected no client for local paths")
	}
}

func TestMaybeOpenFromGoogleStorageLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fastq.gz")
	if err := os.WriteFile(path, []byte{0x1f, 0x8b, 0x08, 0x00}, 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := MaybeOpenFromGoogleStorage(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 4 {
		t.Errorf("expected 4 raw bytes, got %d", len(b))
	}
}
