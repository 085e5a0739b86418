package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mobileheap/profilecard/internal/profilecard/app/external"
	pkghttp "github.com/mobileheap/profilecard/pkg/http"
	"github.com/mobileheap/profilecard/pkg/observability"
)

const listUsersPath = "/users"

type directoryService struct {
	client   pkghttp.Client
	observer observability.Observer
}

func NewDirectoryService(client pkghttp.Client, observer observability.Observer) external.DirectoryService {
	return directoryService{client: client, observer: observer}
}

func (s directoryService) ListUsers(ctx context.Context) ([]external.User, error) {
	if _, ok := s.observer.RequestID(ctx); !ok {
		ctx = s.observer.WithRequestID(ctx, uuid.NewString())
	}

	var body []userOut
	resp, err := s.client.NewRequest(ctx).
		SetResult(&body).
		Get(listUsersPath)
	if err != nil {
		return nil, fmt.Errorf("request directory.listUsers: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("request directory.listUsers: invalid status code %d", resp.StatusCode())
	}

	result := make([]external.User, 0, len(body))
	for _, user := range body {
		result = append(result, external.User{
			ID:   user.ID,
			Name: user.Name,
		})
	}
	return result, nil
}

type userOut struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
