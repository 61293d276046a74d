package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordgraph/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	lf := func(cfg *config.Config, key string) (any, error) {
		calls++
		return "obj:" + key, nil
	}
	obj, err := Load(cfg, "test:a", lf)
	is.NoErr(err)
	is.Equal(obj, "obj:test:a")
	obj, err = Load(cfg, "test:a", lf)
	is.NoErr(err)
	is.Equal(obj, "obj:test:a")
	is.Equal(calls, 1)

	is.True(Evict("test:a"))
	is.True(!Evict("test:a"))
	_, err = Load(cfg, "test:a", lf)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	_, err := Load(cfg, "test:err", func(*config.Config, string) (any, error) {
		return nil, boom
	})
	is.True(errors.Is(err, boom))
	obj, err := Load(cfg, "test:err", func(*config.Config, string) (any, error) {
		return 3, nil
	})
	is.NoErr(err)
	is.Equal(obj, 3)
}
