// Package fileutil holds file permission modes shared by writers.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for normalized output documents,
// which may contain sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
