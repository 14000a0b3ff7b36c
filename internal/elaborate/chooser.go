package elaborate

import (
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/library"
)

// ChooseArch implements the architecture chooser (spec.md §4.1): walk
// every Arch unit in libraryName whose name strips to entityName, keep
// a running best by (1) greater mtime wins, (2) on equal mtime within
// the same file, the later first-line-number wins, (3) on equal mtime
// across different files, warn and keep the first-encountered.
func (c *Ctx) ChooseArch(libraryName, entityName string) (*design.Arch, bool) {
	units := c.Collab.Library.AllUnits(libraryName)

	var best *library.Unit
	for _, u := range units {
		if u.Kind != design.KArch || library.StripEntityName(u.Name) != entityName {
			continue
		}
		if best == nil {
			best = u
			continue
		}
		switch {
		case u.MTime > best.MTime:
			best = u
		case u.MTime < best.MTime:
			// keep best
		default:
			arch, ok := u.Obj.(*design.Arch)
			bestArch, bestOK := best.Obj.(*design.Arch)
			if ok && bestOK && arch.Pos().File == bestArch.Pos().File {
				if !arch.Pos().Before(bestArch.Pos()) {
					best = u
				}
			} else {
				c.Collab.Diag.Warn("BND001", "", "architecture chooser: ambiguous tie for entity %q across files, keeping first-encountered %q", entityName, best.Name)
			}
		}
	}
	if best == nil {
		return nil, false
	}
	arch, ok := best.Obj.(*design.Arch)
	return arch, ok
}
