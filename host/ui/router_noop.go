//go:build !js

package ui

import (
	"log"
	"os/exec"
	"runtime"
)

func seedParam(fallback uint64) uint64 {
	return fallback
}

func BaseURL() string {
	return "https://nobonobo.github.io/solar-top/"
}

func devicePixelRatio() float64 {
	return 1.0
}

func URLOpen(u string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	case "darwin":
		cmd = exec.Command("open", u)
	case "linux":
		cmd = exec.Command("xdg-open", u)
	default:
		log.Printf("unsupported OS for opening links: %s", runtime.GOOS)
		return
	}
	if err := cmd.Start(); err != nil {
		log.Printf("failed to open %s: %v", u, err)
	}
}

func GetParam(key string) string {
	return ""
}

func SetParam(key, value string) {
}
