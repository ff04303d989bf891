// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.StdErr. Both binaries under cmd/ import it so every run records which
// build produced its outputs.
package compileinfoprint

import "github.com/ratzeni/toolkit/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
