package core

import (
	debversion "github.com/knqyf263/go-deb-version"

	"mod-updater/internal/types"
)

// ClassifyChange compares an old and new property value with Debian version
// ordering, which handles the dotted and suffixed versions Maven and Fabric
// publish. Values that do not parse are reported as plain changes.
func ClassifyChange(oldValue string, newValue string) types.ChangeDirection {
	before, err := debversion.NewVersion(oldValue)
	if err != nil {
		return types.ChangeChanged
	}
	after, err := debversion.NewVersion(newValue)
	if err != nil {
		return types.ChangeChanged
	}
	switch {
	case after.GreaterThan(before):
		return types.ChangeUpgrade
	case after.LessThan(before):
		return types.ChangeDowngrade
	default:
		return types.ChangeChanged
	}
}

// AnnotateChanges fills in the direction of every change in report.
func AnnotateChanges(report types.PropertiesReport) types.PropertiesReport {
	for i, change := range report.Changes {
		report.Changes[i].Direction = ClassifyChange(change.Old, change.New)
	}
	return report
}
