package fastqmerge

import (
	"fmt"
	"os"

	"github.com/carbocation/pfx"
	"github.com/sirupsen/logrus"
)

// PrepareFolder makes sure the destination folder is usable. An existing
// folder is only reused when force is set, and its contents are left alone:
// same-named merged files are overwritten, everything else stays.
func PrepareFolder(folder string, force bool, log logrus.FieldLogger) error {
	info, err := os.Stat(folder)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", folder)
		}
		if !force {
			return fmt.Errorf("%s: %w", folder, ErrFolderExists)
		}
		log.Warnf("ALERT: '--force' flag activated: using existing folder %s", folder)
		return nil
	case os.IsNotExist(err):
		log.Infof("Creating folder %s", folder)
		if err := os.MkdirAll(folder, 0755); err != nil {
			return pfx.Err(err)
		}
		return nil
	default:
		return pfx.Err(err)
	}
}
