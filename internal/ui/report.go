package ui

import (
	"sort"

	"github.com/xlab/treeprint"

	"github.com/kahusec/fluxvet/internal/manifest"
	"github.com/kahusec/fluxvet/internal/scan"
)

// RenderReport renders the report as two trees: duplicated documents
// grouped by identity, and kms keys used grouped by key ARN. Branches
// and leaves are sorted so output is stable across runs.
func RenderReport(report *scan.Report) string {
	dup := treeprint.NewWithRoot("duplicated documents")
	for _, id := range sortedIdentities(report.Duplicates) {
		branch := dup.AddBranch(Highlight.Sprint(id.String()))
		for _, path := range report.Duplicates[id].Sorted() {
			branch.AddNode(Path.Sprint(path))
		}
	}

	keys := treeprint.NewWithRoot("kms keys used")
	for _, arn := range sortedKeys(report.KeyUsage) {
		branch := keys.AddBranch(Highlight.Sprint(arn))
		for _, path := range report.KeyUsage[arn].Sorted() {
			branch.AddNode(Path.Sprint(path))
		}
	}

	return dup.String() + "\n" + keys.String()
}

func sortedIdentities(groups scan.DuplicateGroups) []manifest.Identity {
	ids := make([]manifest.Identity, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

func sortedKeys(usage scan.KeyUsage) []string {
	arns := make([]string, 0, len(usage))
	for arn := range usage {
		arns = append(arns, arn)
	}
	sort.Strings(arns)
	return arns
}
