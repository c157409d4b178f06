package decode

import (
	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// File decodes a downloaded file into sheet bundles according to its
// kind. Unsupported kinds and undecodable content both yield nil.
func File(path string, kind domain.FileKind) []domain.SheetBundle {
	switch kind {
	case domain.KindExcel:
		return Excel(path)
	case domain.KindLegacyExcel:
		return LegacyExcel(path)
	case domain.KindCSV:
		return CSV(path)
	default:
		logger.Debug("decode: unsupported kind for %s", path)
		return nil
	}
}
