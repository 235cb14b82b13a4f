package version

import (
	"testing"

	"reviewtrust/internal/core/review"
)

func TestInfo(t *testing.T) {
	bi := Info()
	if bi.Service != "reviewtrust-api" {
		t.Fatalf("service = %q", bi.Service)
	}
	if bi.AlgorithmVersion != review.AlgorithmVersion {
		t.Fatalf("algorithm version = %d", bi.AlgorithmVersion)
	}
	if bi.Version == "" || bi.Commit == "" || bi.Date == "" {
		t.Fatalf("empty build fields: %+v", bi)
	}
}
