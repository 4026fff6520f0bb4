package version

import (
	"fmt"
	"runtime"
)

// 构建时通过 -ldflags "-X" 注入
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func Printer() {
	fmt.Println("Version:   ", Version)
	fmt.Println("Git Commit:", GitCommit)
	fmt.Println("Build Time:", BuildTime)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("OS/Arch:   ", runtime.GOOS+"/"+runtime.GOARCH)
}
