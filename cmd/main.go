package main

import (
	"os"
)

// @title        Heat Capacity Game API
// @version      1.0
// @description  Two-vessel thermal simulation: snapshot stream and player intents.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
