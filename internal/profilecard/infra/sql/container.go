package sql

import (
	sqlprofilecard "github.com/mobileheap/profilecard/data/sql/profilecard"
	commoncmd "github.com/mobileheap/profilecard/internal/pkg/cmd"
	"github.com/mobileheap/profilecard/internal/profilecard/domain"
	pkglazy "github.com/mobileheap/profilecard/pkg/lazy"
	pkgsql "github.com/mobileheap/profilecard/pkg/sql"
)

type DependencyContainer struct {
	ProfileStore  pkglazy.Loader[domain.ProfileStore]
	FollowerStore pkglazy.Loader[domain.FollowerStore]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
) pkglazy.Loader[*DependencyContainer] {
	return pkglazy.New(func() (*DependencyContainer, error) {
		dbMigrations.MustLoad().MustRegister(sqlprofilecard.Migrations)

		client := pkglazy.New(func() (pkgsql.Client, error) {
			return pkgsql.NewTransactionalClient(db.MustLoad()), nil
		})

		return &DependencyContainer{
			ProfileStore: pkglazy.New(func() (domain.ProfileStore, error) {
				return NewProfileStore(client.MustLoad()), nil
			}),
			FollowerStore: pkglazy.New(func() (domain.FollowerStore, error) {
				return NewFollowerStore(client.MustLoad()), nil
			}),
		}, nil
	})
}
