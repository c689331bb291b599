package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

// ReadSQL resolves a query resource. A resource without the ".sql" suffix is
// the query itself. Otherwise the path is tried as given, then relative to
// sqlDir, and the first readable non-empty file wins.
func ReadSQL(resource, sqlDir string) (string, error) {
	if filepath.Ext(resource) != ".sql" {
		return resource, nil
	}

	candidates := []string{resource}
	if sqlDir != "" && !filepath.IsAbs(resource) {
		candidates = append(candidates, filepath.Join(sqlDir, resource))
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		content, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}
		return string(content), nil
	}

	return "", errors.NewResourceNotFoundError("sql", resource, candidates)
}
