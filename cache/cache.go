package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgraph/config"
)

// The cache holds large objects that are expensive to build and immutable
// afterwards, chiefly lexicons. Building a lexicon from a big dictionary
// takes a while, and every game mode of a session can share one.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func (c *cache) evict(key string) bool {
	c.Lock()
	defer c.Unlock()
	_, ok := c.objects[key]
	delete(c.objects, key)
	return ok
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object stored under name, calling loadFunc to build it
// the first time it is requested.
func Load(cfg *config.Config, name string, loadFunc loadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Evict drops the object stored under name, if any. It returns whether
// there was one.
func Evict(name string) bool {
	if GlobalObjectCache == nil {
		return false
	}
	return GlobalObjectCache.evict(name)
}
