package main

import (
	"context"

	"github.com/joho/godotenv"

	commoncmd "github.com/mobileheap/profilecard/internal/pkg/cmd"
	"github.com/mobileheap/profilecard/internal/profilecard"
	"github.com/mobileheap/profilecard/internal/profilecard/app/viewmodel"
	pkgcmd "github.com/mobileheap/profilecard/pkg/cmd"
	pkglog "github.com/mobileheap/profilecard/pkg/log"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	infra := commoncmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	container := profilecard.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.DirectoryHTTPClient,
		infra.Observer,
		infra.Logger,
		viewmodel.WithChangeListener(func(state viewmodel.State) {
			logger.With(pkglog.Fields{
				"name":      state.Name,
				"followers": len(state.Followers),
				"isLoading": state.IsLoading,
				"isSyncing": state.IsSyncing,
			}).Debug(ctx, "card state changed")
		}),
	)

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		container.CardService.MustLoad().PublishFollowerSnapshots,
		container.CardViewModel.MustLoad().Listen,
	)
}
