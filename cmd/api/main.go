package main

import (
	_ "comercial_moveis/docs"
	"comercial_moveis/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Comercial Móveis API
// @version         1.0
// @description     Budget simulation, quotes, contracts and contract payments for planned furniture sales.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
