package profilecard

import (
	"github.com/mobileheap/profilecard/internal/pkg/cmd"
	"github.com/mobileheap/profilecard/internal/profilecard/app/external"
	"github.com/mobileheap/profilecard/internal/profilecard/app/service"
	"github.com/mobileheap/profilecard/internal/profilecard/app/viewmodel"
	directoryhttp "github.com/mobileheap/profilecard/internal/profilecard/infra/directory/http"
	infrasql "github.com/mobileheap/profilecard/internal/profilecard/infra/sql"
	pkghttp "github.com/mobileheap/profilecard/pkg/http"
	pkglazy "github.com/mobileheap/profilecard/pkg/lazy"
	pkglog "github.com/mobileheap/profilecard/pkg/log"
	"github.com/mobileheap/profilecard/pkg/observability"
	pkgpersistence "github.com/mobileheap/profilecard/pkg/persistence"
	pkgsql "github.com/mobileheap/profilecard/pkg/sql"
)

const domainName = "profilecard"

type DependencyContainer struct {
	CardService   pkglazy.Loader[*service.CardService]
	CardViewModel pkglazy.Loader[*viewmodel.CardViewModel]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[cmd.SQLMigrations],
	directoryHTTPClient pkglazy.Loader[pkghttp.Client],
	observer pkglazy.Loader[observability.Observer],
	logger pkglazy.Loader[pkglog.Logger],
	viewModelOpts ...viewmodel.Option,
) *DependencyContainer {
	sqlContainer := infrasql.NewDependencyContainer(db, dbMigrations)
	directoryService := directoryServiceProvider(directoryHTTPClient, observer)

	// the transaction's onCommit hook drives the live follower read model,
	// so it closes over the service loader declared right after it
	var cardService pkglazy.Loader[*service.CardService]
	transaction := pkglazy.New(func() (pkgpersistence.Transaction, error) {
		return pkgsql.NewTransaction(db.MustLoad(), domainName, func() {
			cardService.MustLoad().StoreCommitted()
		}), nil
	})

	cardService = pkglazy.New(func() (*service.CardService, error) {
		return service.NewCardService(
			directoryService.MustLoad(),
			transaction.MustLoad(),
			sqlContainer.MustLoad().ProfileStore.MustLoad(),
			sqlContainer.MustLoad().FollowerStore.MustLoad(),
			logger.MustLoad(),
		), nil
	})

	return &DependencyContainer{
		CardService: cardService,
		CardViewModel: pkglazy.New(func() (*viewmodel.CardViewModel, error) {
			return viewmodel.New(cardService.MustLoad(), logger.MustLoad(), viewModelOpts...), nil
		}),
	}
}

func directoryServiceProvider(
	httpClient pkglazy.Loader[pkghttp.Client],
	observer pkglazy.Loader[observability.Observer],
) pkglazy.Loader[external.DirectoryService] {
	return pkglazy.New(func() (external.DirectoryService, error) {
		return directoryhttp.NewDirectoryService(httpClient.MustLoad(), observer.MustLoad()), nil
	})
}
