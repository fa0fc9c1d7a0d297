package main

import (
	_ "time/tzdata"

	_ "reborn_api/docs"
	"reborn_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Reborn API
// @version         1.0
// @description     Reborn registry and birth certificate generation. Reborns and templates live in PostgreSQL, documents in DynamoDB and generated files in MinIO.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
