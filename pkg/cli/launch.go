package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"jeka/pkg/jdk"
)

// MainClass is the JVM entry point of the tool.
const MainClass = "dev.jeka.core.tool.Main"

// ExecutionResult is the command that replaces the launcher process via
// syscall.Exec once resolution is complete.
type ExecutionResult struct {
	// Exe is the path to the executable to run.
	Exe string
	// Args contains the full argument vector, including Args[0].
	Args []string
	// Env contains the environment variables for the process.
	Env []string
}

// FindJava locates the java executable. A resolved runtime home is used
// directly; otherwise JAVA_HOME is tried, then the PATH.
func FindJava(javaHome string) (string, error) {
	if javaHome != "" {
		return javaExe(javaHome), nil
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		exe := javaExe(home)
		if _, err := os.Stat(exe); err == nil {
			return exe, nil
		}
	}

	exe, err := exec.LookPath("java")
	if err != nil {
		return "", fmt.Errorf("no java executable found: set %s in a properties file or install a JDK on the PATH", jdk.VersionProp)
	}
	return exe, nil
}

func javaExe(home string) string {
	name := "java"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(home, "bin", name)
}

// JavaCommand assembles the JVM invocation for the resolved base
// directory and classpath. toolArgs are appended after the main class,
// untouched.
func JavaCommand(javaPath, baseDir string, classpath []string, toolArgs []string, env []string) *ExecutionResult {
	args := []string{
		"java",
		"-Djeka.current.basedir=" + baseDir,
		"-cp",
		strings.Join(classpath, string(os.PathListSeparator)),
		MainClass,
	}
	args = append(args, toolArgs...)

	return &ExecutionResult{Exe: javaPath, Args: args, Env: env}
}

// LaunchEnv returns the child process environment, overriding JAVA_HOME
// when a managed runtime was resolved.
func LaunchEnv(javaHome string) []string {
	env := os.Environ()
	if javaHome == "" {
		return env
	}

	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, "JAVA_HOME=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, "JAVA_HOME="+javaHome)
}
