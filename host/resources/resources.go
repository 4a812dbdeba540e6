package resources

import "embed"

//go:embed ui
var UI embed.FS

//go:embed ui/info.txt
var Info string
