package main

import "path/filepath"

// sanitizePath reduces a path to its base name for inclusion in error
// messages shared outside the local machine (e.g. pasted into a ticket),
// mirroring northroot-cli's path::sanitize_path_for_error in the original
// source — full paths can leak directory layout or usernames that a
// verification report otherwise has no business repeating.
func sanitizePath(p string) string {
	return filepath.Base(p)
}
