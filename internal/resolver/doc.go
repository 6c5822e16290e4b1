// Package resolver maps command names to absolute executable paths.
//
// PathEnvironmentResolver accepts either a path-qualified command, which must
// name an executable regular file, or a bare name that is looked up in the
// directories of the process search path. The search path is derived once per
// resolver from the operating system family and the PATH environment variable.
package resolver
