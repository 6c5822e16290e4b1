package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSearchPath(testInstance *testing.T) {
	testCases := []struct {
		name        string
		family      OperatingSystemFamily
		environment []string
		expected    []string
	}{
		{
			name:        "posix_default",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"HOME=/root"},
			expected:    []string{"/usr/local/sbin", "/usr/local/bin", "/usr/sbin", "/usr/bin", "/sbin", "/bin"},
		},
		{
			name:        "posix_override",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"PATH=/opt/bin:/usr/bin"},
			expected:    []string{"/opt/bin", "/usr/bin"},
		},
		{
			name:        "first_case_insensitive_key_wins",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"path=/first", "PATH=/second"},
			expected:    []string{"/first"},
		},
		{
			name:        "key_must_match_exactly",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"MANPATH=/usr/share/man", "PATHS=/nope"},
			expected:    []string{"/usr/local/sbin", "/usr/local/bin", "/usr/sbin", "/usr/bin", "/sbin", "/bin"},
		},
		{
			name:        "empty_entries_dropped",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"PATH=/opt/bin::/usr/bin:"},
			expected:    []string{"/opt/bin", "/usr/bin"},
		},
		{
			name:        "empty_override_falls_back",
			family:      OperatingSystemFamilyPOSIX,
			environment: []string{"PATH="},
			expected:    []string{"/usr/local/sbin", "/usr/local/bin", "/usr/sbin", "/usr/bin", "/sbin", "/bin"},
		},
		{
			name:        "windows_default",
			family:      OperatingSystemFamilyWindows,
			environment: nil,
			expected:    []string{"C:\\Windows\\System32", "C:\\Windows"},
		},
		{
			name:        "windows_override",
			family:      OperatingSystemFamilyWindows,
			environment: []string{"Path=C:\\Tools;C:\\Program Files\\Git\\bin"},
			expected:    []string{"C:\\Tools", "C:\\Program Files\\Git\\bin"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, deriveSearchPath(testCase.family, testCase.environment))
		})
	}
}

func TestOperatingSystemFamilySeparators(testInstance *testing.T) {
	windowsFamily := DetectOperatingSystemFamily("Windows")
	require.Equal(testInstance, OperatingSystemFamilyWindows, windowsFamily)
	require.True(testInstance, windowsFamily.ContainsDirectorySeparator("bin\\tool"))
	require.True(testInstance, windowsFamily.ContainsDirectorySeparator("bin/tool"))
	require.False(testInstance, windowsFamily.ContainsDirectorySeparator("tool.exe"))

	posixFamily := DetectOperatingSystemFamily("darwin")
	require.Equal(testInstance, OperatingSystemFamilyPOSIX, posixFamily)
	require.True(testInstance, posixFamily.ContainsDirectorySeparator("./tool"))
	require.False(testInstance, posixFamily.ContainsDirectorySeparator("bin\\tool"))
}

func TestWindowsCandidateNamesUsePathExtensions(testInstance *testing.T) {
	commandResolver := NewPathEnvironmentResolverWithDependencies(Dependencies{
		OperatingSystem: "windows",
		EnvironmentProvider: func() []string {
			return []string{"PATHEXT=.EXE;.CMD"}
		},
	})
	commandResolver.initializeSearchPath()

	require.Equal(testInstance, []string{"git", "git.exe", "git.cmd"}, commandResolver.candidateNames("git"))
	require.Equal(testInstance, []string{"git.exe"}, commandResolver.candidateNames("git.exe"))
}
