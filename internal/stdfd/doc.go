// Package stdfd redirects the process's standard output and error
// descriptors to arbitrary files and restores them afterward, hiding the
// platform-specific mechanics behind a common surface.
//
// On Unix the live descriptor is duplicated for safekeeping and repointed
// with dup2 (dup3 on Linux). On Windows the console slot handle is
// substituted with SetStdHandle, which invalidates the previous os.Std*
// stream object, so the package also rebinds the package-level stream
// variable to the target and reinstates it on restore.
package stdfd
