package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md samples/*.txt
var embeddedFS embed.FS

// SamplesDir is the directory of the sample maps inside FS.
const SamplesDir = "samples"

// FS returns the embedded filesystem with access to about.md and the sample maps.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// Samples returns the sample maps filesystem rooted at SamplesDir.
func Samples() fs.FS {
	sub, err := fs.Sub(embeddedFS, SamplesDir)
	if err != nil {
		// SamplesDir is embedded at build time.
		panic(err)
	}
	return sub
}
