package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	version := ""
	if c.Version != "" && c.Version != "(devel)" {
		version = " " + c.Version
	}

	return fmt.Sprintf("This %s%s binary was built with %s at commit %v at time %v.%s", c.Package, version, c.GoVersion, c.Commit, c.CommitTime, mod)
}

// Get reads the build information embedded by the go tool. Fields stay empty
// when the binary carries none, e.g. under go test.
func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	out.Version = z.Main.Version
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fields flattens the build information for structured log lines. Empty
// values are left out.
func (c CompileInfo) Fields() map[string]interface{} {
	out := map[string]interface{}{}
	for key, value := range map[string]string{
		"package":     c.Package,
		"version":     c.Version,
		"go_version":  c.GoVersion,
		"commit":      c.Commit,
		"commit_time": c.CommitTime,
	} {
		if value != "" && value != "(devel)" {
			out[key] = value
		}
	}
	if c.Modified {
		out["modified"] = true
	}
	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
