package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/rabbitt-ai/quizforge/internal/adapters/credstore"
	redisadapter "github.com/rabbitt-ai/quizforge/internal/adapters/redis"
	"github.com/rabbitt-ai/quizforge/internal/data"
	"github.com/rabbitt-ai/quizforge/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all constructed application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Blueprints *service.BlueprintService
	Samples    *service.SampleService
	Generator  *service.GenerateService
}

// ServiceDependencies contains the connections services are built on.
type ServiceDependencies struct {
	DB     *sql.DB
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// BuildServices constructs the full service container.
func BuildServices(deps ServiceDependencies) ServiceContainer {
	blueprintRepo := data.NewBlueprintRepo(deps.DB)
	sampleRepo := data.NewSampleRepo(deps.DB)

	return ServiceContainer{
		Auth:       buildAuthService(deps.Redis),
		Blueprints: service.NewBlueprintService(service.BlueprintServiceOptions{Blueprints: blueprintRepo}),
		Samples:    service.NewSampleService(service.SampleServiceOptions{Samples: sampleRepo}),
		Generator:  service.NewGenerateService(service.GenerateServiceOptions{}),
	}
}

// buildAuthService wires the fixed credential set and the Redis-backed
// session store into the auth service.
func buildAuthService(client redis.UniversalClient) *service.AuthService {
	return service.NewAuthService(service.AuthServiceOptions{
		Credentials: credstore.New(credstore.Defaults()),
		Sessions:    redisadapter.NewSessionStore(client),
	})
}
