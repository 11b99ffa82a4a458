// filepath: cmd/portfolio/main.go
package main

import (
	"portfolio/internal/cli"
)

// @title Portfolio API
// @version 1.0.0
// @description Backend for a single-photographer portfolio site.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a session token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
