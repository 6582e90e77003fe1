package decorate

import (
	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/models"
)

// ClassifySuffix returns the type indicator for t under policy.
// Always marks directories, symlinks, sockets and pipes; auto marks only
// directories and symlinks.
func ClassifySuffix(t models.NodeType, policy config.Policy) string {
	switch policy {
	case config.PolicyAlways:
		switch t {
		case models.NodeDirectory:
			return "/"
		case models.NodeSymlink:
			return "@"
		case models.NodeSocket:
			return "="
		case models.NodeNamedPipe:
			return "|"
		}
	case config.PolicyAuto:
		switch t {
		case models.NodeDirectory:
			return "/"
		case models.NodeSymlink:
			return "@"
		}
	}
	return ""
}
