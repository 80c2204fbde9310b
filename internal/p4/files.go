package p4

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
)

// ListDepotFiles runs "p4 fstat" and parses the results into a slice of DepotFile structs.
// Deleted, purged and archived files are left out.
// Order of resulting slice is alphabetical by Path, ignoring case.
func (p *P4) ListDepotFiles() ([]DepotFile, error) {
	return p.runAndParseDepotFiles(Call{
		Command: "fstat",
		Options: options.FileStat(
			options.FstatFileSizeDigest,
			"^(headAction=move/delete | headAction=purge | headAction=archive | headAction=delete)",
			[]string{"depotFile", "headAction", "headChange", "headType", "digest", "fileSize"},
			0, 0,
		),
		Args: []string{fmt.Sprintf("//%s/...", p.Client)},
	})
}

// OpenedFiles calls p4 opened and returns the results.
// Order of resulting slice is alphabetical by Path, ignoring case.
func (p *P4) OpenedFiles() ([]DepotFile, error) {
	return p.runAndParseDepotFiles(Call{
		Command: "opened",
		Options: options.OpenedFiles(options.OpenedAllClients, options.NoChangelist, p.Client, "", 0),
	})
}

// DepotFiles does a "files -e" and returns the results.
// Order of resulting slice is alphabetical by Path, ignoring case.
func (p *P4) DepotFiles() ([]DepotFile, error) {
	return p.runAndParseDepotFiles(Call{
		Command: "files",
		Options: options.ListFiles(options.FilesExcludeDeleted, 0),
		Args:    []string{fmt.Sprintf("//%s/...", p.Client)},
	})
}
