// cmd/greensteel-balance/main.go
package main

import (
	"greensteel/internal/appshell"
	"greensteel/internal/balanceapp"
)

func main() { appshell.Main(balanceapp.RunContext) }
