//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "DirectoryService=DirectoryService"
package external

import "context"

type (
	// DirectoryService is the remote listing endpoint the follower set is
	// synchronized from.
	DirectoryService interface {
		ListUsers(ctx context.Context) ([]User, error)
	}

	User struct {
		ID   int64
		Name string
	}
)
