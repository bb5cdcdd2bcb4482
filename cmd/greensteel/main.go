// cmd/greensteel/main.go
package main

import (
	"greensteel/internal/appshell"
	"greensteel/internal/lcosapp"
)

func main() { appshell.Main(lcosapp.RunContext) }
