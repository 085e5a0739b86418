package env

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	pkgstrings "github.com/mobileheap/profilecard/pkg/strings"
)

type availableTypes interface {
	bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T availableTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, notFoundError(key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, invalidValueError(key, err)
	}
	return v, nil
}

func ParseOptional[T availableTypes](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseDefault[T availableTypes](key string, def T) (T, error) {
	opt, err := ParseOptional[T](key)
	if err != nil {
		return def, err
	}
	if opt == nil {
		return def, nil
	}
	return *opt, nil
}

func notFoundError(key string) error {
	return fmt.Errorf("environment variable %s is not set", key)
}

func invalidValueError(key string, err error) error {
	return fmt.Errorf("environment variable %s has invalid value: %w", key, err)
}
