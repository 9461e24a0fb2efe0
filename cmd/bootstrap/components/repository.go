package components

import (
	"lendshare/internal/infra/cache"
	"lendshare/internal/infra/readstore"
	"lendshare/internal/infra/repository"
	"lendshare/internal/pkg/config"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserWriteRepo)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(commands.ItemWriteRepo)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingWriteRepo)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(commands.CommentWriteRepo)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestWriteRepo)),
		),

		// Read side
		readstore.NewUserReadStore,
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),

		// User reads go through the directory cache; commands use the same
		// instance for invalidation.
		fx.Annotate(
			NewUserDirectoryCache,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.DirectoryCache)),
		),
	),
)

func NewUserDirectoryCache(inner *readstore.UserReadStore, client *redis.Client, cfg config.Config) *cache.UserDirectoryCache {
	return cache.NewUserDirectoryCache(inner, client, cfg.Redis.TTL)
}
