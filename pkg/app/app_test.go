package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/game"
)

func testConfig() Config {
	return Config{
		Verbose:     true,
		JourneyPath: "../../data/journey.yaml",
		ContentPath: "../../data/content.yaml",
	}
}

func TestNewApp_StartsJourney(t *testing.T) {
	a, err := NewApp(testConfig())
	require.NoError(t, err)

	assert.Equal(t, game.SceneJourney, a.GetSceneManager().CurrentName())
	assert.True(t, a.Engine().Active())

	w, h := a.Layout(600, 800)
	assert.Equal(t, config.GameWindowWidth, w)
	assert.Equal(t, config.GameWindowHeight, h)
	assert.Equal(t, 600, a.viewport.Width)
}

func TestNewApp_MissingContentIsNotFatal(t *testing.T) {
	cfg := testConfig()
	cfg.ContentPath = "testdata/missing.yaml"

	_, err := NewApp(cfg)
	assert.NoError(t, err)
}

func TestNewApp_MissingJourneyFails(t *testing.T) {
	cfg := testConfig()
	cfg.JourneyPath = "testdata/missing.yaml"

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewApp_ResumesSavedProgress(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := testConfig()
	cfg.AppName = "scrollpath_app_test"

	first, err := NewApp(cfg)
	require.NoError(t, err)
	first.Engine().Restore(150)
	require.True(t, first.SaveOnExit())

	second, err := NewApp(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 150, second.Engine().Progress().Actual, 1e-9)

	cfg.Fresh = true
	fresh, err := NewApp(cfg)
	require.NoError(t, err)
	assert.Zero(t, fresh.Engine().Progress().Actual)
}
