package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fpm/lattice"
)

func TestValidateSupport(x *testing.T) {
	t := assert.New(x)
	for _, r := range []float64{.5, 1, .0001} {
		c := &Config{Support: r}
		t.Nil(c.Validate(), "%v", r)
	}
	for _, r := range []float64{0, -.5, 1.0001, 2, math.NaN(), math.Inf(1)} {
		c := &Config{Support: r}
		err := c.Validate()
		t.NotNil(err, "%v", r)
		_, ok := err.(*ConfigError)
		t.True(ok, "%T", err)
	}
}

func TestValidateOther(x *testing.T) {
	t := assert.New(x)
	t.NotNil((&Config{Support: .5, Parallelism: -2}).Validate())
	t.NotNil((&Config{Support: .5, Timeout: -time.Second}).Validate())
	t.Nil((&Config{Support: .5, Parallelism: -1, Timeout: time.Second}).Validate())
}

func TestWorkers(x *testing.T) {
	t := assert.New(x)
	t.Equal(1, (&Config{}).Workers())
	t.Equal(runtime.NumCPU(), (&Config{Parallelism: -1}).Workers())
	t.Equal(7, (&Config{Parallelism: 7}).Workers())
}

func TestAbsoluteSupport(x *testing.T) {
	t := assert.New(x)
	t.Equal(lattice.Threshold(2), (&Config{Support: .5}).AbsoluteSupport(4))
	t.Equal(lattice.Threshold(1), (&Config{Support: .34}).AbsoluteSupport(3))
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	path := filepath.Join(x.TempDir(), "run.yaml")
	err := os.WriteFile(path, []byte(`
support: 0.25
output: /tmp/patterns.txt
workers: 4
timeout: 90s
skip-log:
  - DEBUG
`), 0644)
	t.Nil(err)
	c, err := Load(path)
	t.Nil(err)
	t.Equal(.25, c.Support)
	t.Equal("/tmp/patterns.txt", c.Output)
	t.Equal(4, c.Parallelism)
	t.Equal(90*time.Second, c.Timeout)
	t.Equal([]string{"DEBUG"}, c.SkipLog)
	t.Nil(c.Validate())
}

func TestLoadErrors(x *testing.T) {
	t := assert.New(x)
	_, err := Load(filepath.Join(x.TempDir(), "missing.yaml"))
	_, ok := err.(*lattice.IOError)
	t.True(ok, "%T", err)

	path := filepath.Join(x.TempDir(), "bad.yaml")
	t.Nil(os.WriteFile(path, []byte("support: [1, 2"), 0644))
	_, err = Load(path)
	_, ok = err.(*ConfigError)
	t.True(ok, "%T", err)
}
