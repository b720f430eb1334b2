package models

// BuildInformation is set at build time and reported by
// the splash screen and the version HTTP route.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

const commitShortHashLength = 7

// VersionString returns the version, suffixed with the short commit
// hash for the rolling "latest" image. Release versions are returned as is.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" || !isCommitHash(b.Commit) {
		return b.Version
	}
	return b.Version + "-" + b.Commit[:commitShortHashLength]
}

func isCommitHash(commit string) bool {
	if len(commit) < commitShortHashLength {
		return false
	}
	for _, r := range commit {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
