package fileutil

import "os"

// OwnerReadWrite is the file permission mode for merged wanted-list output
// files, which can reveal purchasing intent (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
