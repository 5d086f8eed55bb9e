package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that check their own values.
type Validator interface {
	Validate() error
}

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
	errs   map[string]error
}

var (
	cache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
		errs:   make(map[string]error),
	}

	dotenvLoaded sync.Once
)

// Load populates v from the environment, caching the result per type.
// The first failure for a type is cached as well, so a broken environment
// fails the same way on every call.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	key := typeKey[T]()

	cache.mu.Lock()
	once, ok := cache.onces[key]
	if !ok {
		once = new(sync.Once)
		cache.onces[key] = once
	}
	cache.mu.Unlock()

	once.Do(func() {
		var parsed T
		err := parse(&parsed)

		cache.mu.Lock()
		defer cache.mu.Unlock()
		if err != nil {
			cache.errs[key] = err
			return
		}
		cache.values[key] = parsed
	})

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	if err, ok := cache.errs[key]; ok {
		return err
	}
	cached, ok := cache.values[key]
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse populates v from the current environment without touching the cache.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()
	return parse(v)
}

func parse[T any](v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}

func loadDotenv() {
	dotenvLoaded.Do(func() {
		// a missing .env file is normal outside local development
		_ = godotenv.Load()
	})
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}
