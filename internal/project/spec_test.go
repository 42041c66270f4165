package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecDefaults(t *testing.T) {
	s, err := NewSpec("my-gem", Options{})
	require.NoError(t, err)

	assert.Equal(t, "my-gem", s.Dir)
	assert.Equal(t, Shoulda, s.TestStyle)
	assert.Equal(t, "TODO", s.Summary)
	assert.False(t, s.CreateRemote)
	assert.Equal(t, "0.0.0", s.Version.String())
	assert.Equal(t, "MyGem", s.ConstantName())
	assert.Equal(t, "my_gem", s.FilePrefix())
	assert.Equal(t, "Initial commit to my-gem.", s.CommitMessage())
}

func TestNewSpecOptions(t *testing.T) {
	s, err := NewSpec("my-gem", Options{
		Directory:    "out/gem",
		TestStyle:    "bacon",
		Summary:      "does things",
		CreateRemote: true,
		Version:      "1.2.3",
	})
	require.NoError(t, err)

	assert.Equal(t, Bacon, s.TestStyle)
	assert.True(t, s.CreateRemote)
	assert.Equal(t, filepath.Join("out/gem", "lib"), s.LibDir())
	assert.Equal(t, filepath.Join("out/gem", "spec"), s.TestDir())
	assert.Equal(t, filepath.Join("out/gem", "features"), s.FeaturesDir())
	assert.Equal(t, filepath.Join("out/gem", "features", "support"), s.FeaturesSupportDir())
	assert.Equal(t, filepath.Join("out/gem", "features", "steps"), s.FeaturesStepsDir())
	assert.Equal(t, uint64(2), s.Version.Minor())
}

func TestNewSpecErrors(t *testing.T) {
	_, err := NewSpec("", Options{})
	assert.ErrorIs(t, err, ErrNoName)

	_, err = NewSpec("my-gem", Options{TestStyle: "rspec"})
	assert.ErrorIs(t, err, ErrUnknownTestStyle)

	_, err = NewSpec("my-gem", Options{Version: "one"})
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
