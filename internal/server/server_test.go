package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	err error
}

func (f fakeJobs) Start() error { return f.err }

type fakeCloser struct {
	name   string
	closed *[]string
}

func (f fakeCloser) Close() error {
	*f.closed = append(*f.closed, f.name)
	return nil
}

func TestStartJobs(t *testing.T) {
	t.Run("failure closes redis and database", func(t *testing.T) {
		var closed []string
		err := startJobs(
			fakeJobs{err: errors.New("redis: connection refused")},
			fakeCloser{name: "redis", closed: &closed},
			fakeCloser{name: "database", closed: &closed},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start job service")
		assert.Equal(t, []string{"redis", "database"}, closed)
	})

	t.Run("success keeps clients open", func(t *testing.T) {
		var closed []string
		err := startJobs(fakeJobs{}, fakeCloser{name: "redis", closed: &closed})

		require.NoError(t, err)
		assert.Empty(t, closed)
	})
}
