package core

import (
	"regexp"
	"strings"
)

var snapshotPattern = regexp.MustCompile(`(\d{2,})w(\d{2})([a-zA-Z]+)`)

// RequiredVersion rewrites a weekly snapshot target such as 21w07a into the
// semantic form expected by mod metadata, e.g. 1.17-alpha.21.07.a. The
// second result is false when the target is not a weekly snapshot or no
// snapshot label is configured.
func RequiredVersion(target string, snapshot string) (string, bool) {
	if target == "" || snapshot == "" {
		return "", false
	}
	if !snapshotPattern.MatchString(target) {
		return "", false
	}
	return snapshotPattern.ReplaceAllString(target, strings.ReplaceAll(snapshot, "$", "$$")+"-alpha.$1.$2.$3"), true
}
