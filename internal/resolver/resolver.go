package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	executablePermissionMaskConstant = 0o111
)

var errNotExecutableFile = errors.New("not an executable regular file")

// CommandResolver converts a command name into an absolute executable path.
type CommandResolver interface {
	ResolveCommand(command string) (string, error)
}

// EnvironmentProvider returns the process environment in "KEY=value" form.
type EnvironmentProvider func() []string

// Dependencies configures a PathEnvironmentResolver. Zero values select the host
// operating system and os.Environ.
type Dependencies struct {
	OperatingSystem     string
	EnvironmentProvider EnvironmentProvider
}

// PathEnvironmentResolver resolves commands against the PATH environment variable.
type PathEnvironmentResolver struct {
	family              OperatingSystemFamily
	environmentProvider EnvironmentProvider

	searchPathOnce     sync.Once
	searchPath         []string
	executableSuffixes []string
}

// NewPathEnvironmentResolver builds a resolver for the host operating system.
func NewPathEnvironmentResolver() *PathEnvironmentResolver {
	return NewPathEnvironmentResolverWithDependencies(Dependencies{})
}

// NewPathEnvironmentResolverWithDependencies builds a resolver with explicit inputs.
func NewPathEnvironmentResolverWithDependencies(dependencies Dependencies) *PathEnvironmentResolver {
	operatingSystem := dependencies.OperatingSystem
	if len(strings.TrimSpace(operatingSystem)) == 0 {
		operatingSystem = runtime.GOOS
	}

	environmentProvider := dependencies.EnvironmentProvider
	if environmentProvider == nil {
		environmentProvider = os.Environ
	}

	return &PathEnvironmentResolver{
		family:              DetectOperatingSystemFamily(operatingSystem),
		environmentProvider: environmentProvider,
	}
}

// Family reports the operating system family the resolver was configured for.
func (resolver *PathEnvironmentResolver) Family() OperatingSystemFamily {
	return resolver.family
}

// SearchPath returns a copy of the cached directory list, computing it on first use.
func (resolver *PathEnvironmentResolver) SearchPath() []string {
	resolver.initializeSearchPath()
	duplicated := make([]string, len(resolver.searchPath))
	copy(duplicated, resolver.searchPath)
	return duplicated
}

// ResolveCommand returns the absolute path of the executable named by command.
//
// A command containing a directory separator is treated as a literal path and is
// never looked up in the search path; its symlinks are resolved. A bare name is
// matched against each search path directory in order and the first executable
// regular file wins.
func (resolver *PathEnvironmentResolver) ResolveCommand(command string) (string, error) {
	if len(command) == 0 {
		return "", ResolutionError{Command: command}
	}

	if resolver.family.ContainsDirectorySeparator(command) {
		return resolver.resolveLiteralPath(command)
	}

	resolver.initializeSearchPath()
	for _, directory := range resolver.searchPath {
		for _, candidateName := range resolver.candidateNames(command) {
			candidatePath := directory + resolver.family.DirectorySeparator() + candidateName
			if resolver.isExecutableFile(candidatePath) != nil {
				continue
			}
			absolutePath, absoluteError := filepath.Abs(candidatePath)
			if absoluteError != nil {
				return "", ResolutionError{Command: command, Cause: absoluteError}
			}
			return absolutePath, nil
		}
	}

	return "", ResolutionError{Command: command}
}

func (resolver *PathEnvironmentResolver) resolveLiteralPath(command string) (string, error) {
	if executableError := resolver.isExecutableFile(command); executableError != nil {
		return "", ResolutionError{Command: command, Cause: executableError}
	}

	absolutePath, absoluteError := filepath.Abs(command)
	if absoluteError != nil {
		return "", ResolutionError{Command: command, Cause: absoluteError}
	}

	canonicalPath, canonicalError := filepath.EvalSymlinks(absolutePath)
	if canonicalError != nil {
		return "", ResolutionError{Command: command, Cause: canonicalError}
	}

	return canonicalPath, nil
}

func (resolver *PathEnvironmentResolver) initializeSearchPath() {
	resolver.searchPathOnce.Do(func() {
		environment := resolver.environmentProvider()
		resolver.searchPath = deriveSearchPath(resolver.family, environment)
		if resolver.family == OperatingSystemFamilyWindows {
			resolver.executableSuffixes = deriveExecutableSuffixes(environment)
		}
	})
}

// candidateNames lists the file names tried inside each directory. Windows also
// tries the PATHEXT suffixes when the command carries none of them.
func (resolver *PathEnvironmentResolver) candidateNames(command string) []string {
	if resolver.family != OperatingSystemFamilyWindows || resolver.hasExecutableSuffix(command) {
		return []string{command}
	}

	candidates := make([]string, 0, len(resolver.executableSuffixes)+1)
	candidates = append(candidates, command)
	for _, suffix := range resolver.executableSuffixes {
		candidates = append(candidates, command+suffix)
	}
	return candidates
}

func (resolver *PathEnvironmentResolver) isExecutableFile(candidatePath string) error {
	fileInfo, statError := os.Stat(candidatePath)
	if statError != nil {
		return statError
	}
	if !fileInfo.Mode().IsRegular() {
		return errNotExecutableFile
	}

	if resolver.family == OperatingSystemFamilyWindows {
		resolver.initializeSearchPath()
		if !resolver.hasExecutableSuffix(candidatePath) {
			return errNotExecutableFile
		}
		return nil
	}

	if fileInfo.Mode().Perm()&executablePermissionMaskConstant == 0 {
		return errNotExecutableFile
	}
	return nil
}

func (resolver *PathEnvironmentResolver) hasExecutableSuffix(candidatePath string) bool {
	lowered := strings.ToLower(candidatePath)
	for _, suffix := range resolver.executableSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}
