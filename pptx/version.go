package pptx

import "fmt"

// AppName is written to docProps as the producing application.
const AppName = "pitchdeck"

// Writer version, reported in docProps/app.xml.
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 0
)

// Version is the full version string written to docProps/app.xml.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
