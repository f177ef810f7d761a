package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/epicorifa/rifa-api/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Partner integration API key
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
