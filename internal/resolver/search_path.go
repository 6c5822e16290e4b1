package resolver

import (
	"strings"
)

const (
	windowsOperatingSystemConstant           = "windows"
	windowsListSeparatorConstant             = ";"
	windowsDirectorySeparatorConstant        = "\\"
	windowsDefaultSearchPathConstant         = "C:\\Windows\\System32;C:\\Windows"
	windowsDefaultExecutableSuffixesConstant = ".com;.exe;.bat;.cmd"
	posixListSeparatorConstant               = ":"
	posixDirectorySeparatorConstant          = "/"
	posixDefaultSearchPathConstant           = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"
	pathEnvironmentKeyConstant               = "path"
	pathExtensionEnvironmentKeyConstant      = "pathext"
	environmentAssignmentSeparatorConstant   = "="
)

// OperatingSystemFamily distinguishes the two search path conventions.
type OperatingSystemFamily int

const (
	// OperatingSystemFamilyPOSIX uses ':' separated lists and '/' directories.
	OperatingSystemFamilyPOSIX OperatingSystemFamily = iota
	// OperatingSystemFamilyWindows uses ';' separated lists and '\' directories.
	OperatingSystemFamilyWindows
)

// DetectOperatingSystemFamily maps a GOOS-style identifier onto a family.
func DetectOperatingSystemFamily(operatingSystem string) OperatingSystemFamily {
	normalized := strings.ToLower(strings.TrimSpace(operatingSystem))
	if normalized == windowsOperatingSystemConstant {
		return OperatingSystemFamilyWindows
	}
	return OperatingSystemFamilyPOSIX
}

// ListSeparator is the separator between entries of PATH-style variables.
func (family OperatingSystemFamily) ListSeparator() string {
	if family == OperatingSystemFamilyWindows {
		return windowsListSeparatorConstant
	}
	return posixListSeparatorConstant
}

// DirectorySeparator joins a directory and a command name.
func (family OperatingSystemFamily) DirectorySeparator() string {
	if family == OperatingSystemFamilyWindows {
		return windowsDirectorySeparatorConstant
	}
	return posixDirectorySeparatorConstant
}

// ContainsDirectorySeparator reports whether command is path-qualified.
// Windows accepts forward slashes as well as backslashes.
func (family OperatingSystemFamily) ContainsDirectorySeparator(command string) bool {
	if family == OperatingSystemFamilyWindows {
		return strings.ContainsAny(command, windowsDirectorySeparatorConstant+posixDirectorySeparatorConstant)
	}
	return strings.Contains(command, posixDirectorySeparatorConstant)
}

func (family OperatingSystemFamily) defaultSearchPath() string {
	if family == OperatingSystemFamilyWindows {
		return windowsDefaultSearchPathConstant
	}
	return posixDefaultSearchPathConstant
}

// deriveSearchPath computes the ordered directory list for the family. The first
// environment entry whose key equals "path" case-insensitively replaces the
// default list; empty entries are dropped and an empty result falls back to the
// default so the list is never empty.
func deriveSearchPath(family OperatingSystemFamily, environment []string) []string {
	rawSearchPath := family.defaultSearchPath()
	if overrideValue, found := lookupEnvironmentValue(environment, pathEnvironmentKeyConstant); found {
		rawSearchPath = overrideValue
	}

	directories := splitList(rawSearchPath, family.ListSeparator())
	if len(directories) == 0 {
		directories = splitList(family.defaultSearchPath(), family.ListSeparator())
	}
	return directories
}

// deriveExecutableSuffixes lists the extensions that mark a Windows file as executable.
func deriveExecutableSuffixes(environment []string) []string {
	rawSuffixes := windowsDefaultExecutableSuffixesConstant
	if overrideValue, found := lookupEnvironmentValue(environment, pathExtensionEnvironmentKeyConstant); found {
		rawSuffixes = overrideValue
	}

	suffixes := splitList(strings.ToLower(rawSuffixes), windowsListSeparatorConstant)
	if len(suffixes) == 0 {
		suffixes = splitList(windowsDefaultExecutableSuffixesConstant, windowsListSeparatorConstant)
	}
	return suffixes
}

func lookupEnvironmentValue(environment []string, key string) (string, bool) {
	for _, assignment := range environment {
		environmentKey, environmentValue, hasSeparator := strings.Cut(assignment, environmentAssignmentSeparatorConstant)
		if !hasSeparator {
			continue
		}
		if strings.EqualFold(environmentKey, key) {
			return environmentValue, true
		}
	}
	return "", false
}

func splitList(rawList string, separator string) []string {
	entries := strings.Split(rawList, separator)
	directories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if len(entry) == 0 {
			continue
		}
		directories = append(directories, entry)
	}
	return directories
}
