package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/config"
)

type clinicDefaults struct {
	Name  string `env:"TEST_CLINIC_NAME" envDefault:"Clínica Central"`
	Rooms int    `env:"TEST_CLINIC_ROOMS" envDefault:"3"`
	Open  bool   `env:"TEST_CLINIC_OPEN" envDefault:"true"`
}

type clinicOverrides struct {
	Name  string `env:"TEST_CLINIC_NAME_SET" envDefault:"Clínica Central"`
	Rooms int    `env:"TEST_CLINIC_ROOMS_SET" envDefault:"3"`
}

type cachedSetting struct {
	Value string `env:"TEST_CACHED_SETTING" envDefault:"first"`
}

type ownerSetting struct {
	Value string `env:"TEST_OWNER_SETTING" envDefault:"owner"`
}

type petSetting struct {
	Value string `env:"TEST_PET_SETTING" envDefault:"pet"`
}

type requiredSetting struct {
	Value string `env:"TEST_REQUIRED_SETTING,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("TEST_CLINIC_NAME")
		os.Unsetenv("TEST_CLINIC_ROOMS")
		os.Unsetenv("TEST_CLINIC_OPEN")

		var cfg clinicDefaults
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, clinicDefaults{Name: "Clínica Central", Rooms: 3, Open: true}, cfg)
	})

	t.Run("environment values", func(t *testing.T) {
		t.Setenv("TEST_CLINIC_NAME_SET", "Veterinaria Sur")
		t.Setenv("TEST_CLINIC_ROOMS_SET", "5")

		var cfg clinicOverrides
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, clinicOverrides{Name: "Veterinaria Sur", Rooms: 5}, cfg)
	})

	t.Run("cached per type", func(t *testing.T) {
		t.Setenv("TEST_CACHED_SETTING", "first")

		var first cachedSetting
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_SETTING", "second")
		var second cachedSetting
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)

		var reloaded cachedSetting
		require.NoError(t, config.ForceReload(&reloaded))
		assert.Equal(t, "second", reloaded.Value)
	})

	t.Run("types do not share entries", func(t *testing.T) {
		t.Setenv("TEST_OWNER_SETTING", "ana")
		t.Setenv("TEST_PET_SETTING", "firulais")

		var owner ownerSetting
		var pet petSetting
		require.NoError(t, config.Load(&owner))
		require.NoError(t, config.Load(&pet))
		assert.Equal(t, "ana", owner.Value)
		assert.Equal(t, "firulais", pet.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_SETTING")

		var cfg requiredSetting
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("TEST_REQUIRED_SETTING", "set")
		require.NoError(t, config.ForceReload(&cfg))
		assert.Equal(t, "set", cfg.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *clinicDefaults
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
		assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
		assert.Panics(t, func() { config.MustLoad(cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, config.LoadEnv("testdata/missing.env"))
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
