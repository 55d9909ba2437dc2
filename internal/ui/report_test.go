package ui

import (
	"strings"
	"testing"

	"github.com/kahusec/fluxvet/internal/manifest"
	"github.com/kahusec/fluxvet/internal/scan"
)

func TestRenderReport(t *testing.T) {
	report := &scan.Report{
		KeyUsage: scan.KeyUsage{
			"arn:aws:kms:1": scan.PathSet{"a-sops.yml": {}, "b-sops.yml": {}},
		},
		Duplicates: scan.DuplicateGroups{
			manifest.Identity{Kind: "Deployment", Name: "web", Namespace: "prod", Encrypted: true, KeyARN: "arn:aws:kms:1"}: scan.PathSet{
				"a-sops.yml": {}, "b-sops.yml": {},
			},
		},
	}

	out := RenderReport(report)

	for _, want := range []string{
		"duplicated documents",
		"kms keys used",
		"arn:aws:kms:1",
		"a-sops.yml",
		"b-sops.yml",
		"web",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected rendered report to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderReport_Empty(t *testing.T) {
	out := RenderReport(&scan.Report{})

	// Both section headers render even when there is nothing to show.
	if !strings.Contains(out, "duplicated documents") || !strings.Contains(out, "kms keys used") {
		t.Errorf("Expected both section headers, got:\n%s", out)
	}
}
