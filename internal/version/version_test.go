package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.0",
	}

	s := info.String()
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "2026-01-01")
}
