package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"jeka/pkg/cli"
	"jeka/pkg/display"
	"jeka/pkg/distrib"
	"jeka/pkg/downloader"
	"jeka/pkg/home"
	"jeka/pkg/jdk"
	"jeka/pkg/platform"
	"jeka/pkg/props"
	"jeka/pkg/remote"
)

// LogEnv raises logging to debug and display output to verbose when set.
// An environment variable rather than a flag keeps the tool's own
// arguments untouched.
const LogEnv = "JEKA_LAUNCHER_LOG"

func main() {
	res, err := JekaEngine(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := syscall.Exec(res.Exe, res.Args, res.Env); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to exec %s: %v\n", res.Exe, err)
		os.Exit(1)
	}
	// syscall.Exec never returns on success
}

// JekaEngine resolves the base directory, runtime and distribution, and
// returns the JVM command that should replace the launcher process.
func JekaEngine(ctx context.Context, args []string) (*cli.ExecutionResult, error) {
	// 1. Parse the leading launcher arguments.
	inv, err := cli.Parse(args)
	if err != nil {
		return nil, err
	}

	// 2. Initialize console and verbosity.
	disp := display.NewConsole()
	defer disp.Close()

	slog.SetLogLoggerLevel(slog.LevelWarn)
	if os.Getenv(LogEnv) != "" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		disp.SetVerbose(true)
	}

	// 3. Locate user-scope directories and the global properties.
	dirs, err := home.Detect()
	if err != nil {
		return nil, err
	}
	plat := platform.Detect()

	global, err := props.Load(dirs.GlobalPropsFile())
	if err != nil {
		return nil, err
	}

	// 4. Resolve the base directory, cloning when the invocation names a
	// remote reference.
	baseDir, err := resolveBaseDir(ctx, inv, global, dirs, disp)
	if err != nil {
		return nil, err
	}
	slog.Debug("Resolved base directory", "path", baseDir)

	// 5. Build the property chain rooted at the base directory.
	resolver, err := props.NewResolver(baseDir, dirs.GlobalPropsFile())
	if err != nil {
		return nil, err
	}

	dl := downloader.New("jeka-launcher (" + plat.BuildID() + ")")

	// 6. Resolve the runtime.
	jdkRes := &jdk.Resolver{
		Props:      resolver,
		Platform:   plat,
		CacheDir:   dirs.JdkCacheRoot(),
		Downloader: dl,
		Disp:       disp,
	}
	javaHome, err := jdkRes.JavaHome(ctx)
	if err != nil {
		return nil, err
	}

	// 7. Resolve the distribution classpath.
	launcher, err := os.Executable()
	if err != nil {
		launcher = os.Args[0]
	}
	distribRes := &distrib.Resolver{
		Props:        resolver,
		CacheDir:     dirs.DistribCacheRoot(),
		Downloader:   dl,
		Disp:         disp,
		LauncherPath: launcher,
	}
	classpath, err := distribRes.Classpath(ctx, baseDir)
	if err != nil {
		return nil, err
	}

	// 8. Assemble the JVM command.
	javaPath, err := cli.FindJava(javaHome)
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(baseDir); err != nil {
		return nil, fmt.Errorf("failed to enter %s: %w", baseDir, err)
	}

	slog.Debug("Launching", "java", javaPath, "basedir", baseDir)
	return cli.JavaCommand(javaPath, baseDir, classpath, inv.ToolArgs, cli.LaunchEnv(javaHome)), nil
}

// resolveBaseDir maps the invocation to the directory the tool runs in.
func resolveBaseDir(ctx context.Context, inv *cli.Invocation, global *props.Store, dirs home.Dirs, disp display.Display) (string, error) {
	if inv.RemoteRef == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine the working directory: %w", err)
		}
		return wd, nil
	}
	return remote.NewResolver(global, dirs.GitCache(), disp).BaseDir(ctx, inv.RemoteRef, inv.ForceClean)
}
