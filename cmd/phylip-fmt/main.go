// cmd/phylip-fmt/main.go
package main

import (
	"phylip/internal/app"
	"phylip/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
