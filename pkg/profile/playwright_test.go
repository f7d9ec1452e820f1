package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectArgsToPlaywright(t *testing.T) {
	c := ConnectArgs{
		Headers: map[string]string{"X-Auth": "token"},
		SlowMo:  50,
		Timeout: 10000,
	}
	opts := c.ToPlaywright()

	require.NotNil(t, opts.SlowMo)
	assert.Equal(t, 50.0, *opts.SlowMo)
	require.NotNil(t, opts.Timeout)
	assert.Equal(t, 10000.0, *opts.Timeout)
	assert.Equal(t, map[string]string{"X-Auth": "token"}, opts.Headers)
}

func TestLaunchArgsToPlaywrightHeadlessTriState(t *testing.T) {
	auto := DefaultLaunchArgs()
	opts := auto.ToPlaywright()
	assert.Nil(t, opts.Headless, "unset headless stays nil so the driver decides")

	auto.Headless = Bool(true)
	opts = auto.ToPlaywright()
	require.NotNil(t, opts.Headless)
	assert.True(t, *opts.Headless)
}

func TestLaunchArgsToPlaywrightChannelAndIgnoreList(t *testing.T) {
	l := DefaultLaunchArgs()
	opts := l.ToPlaywright()

	require.NotNil(t, opts.Channel)
	assert.Equal(t, "chromium", *opts.Channel)
	assert.Equal(t, []string{"--enable-automation", "--disable-extensions"}, opts.IgnoreDefaultArgs)
	assert.Nil(t, opts.IgnoreAllDefaultArgs)

	l.IgnoreDefaultArgs = IgnoreDefaultArgs{All: true}
	opts = l.ToPlaywright()
	require.NotNil(t, opts.IgnoreAllDefaultArgs)
	assert.True(t, *opts.IgnoreAllDefaultArgs)
	assert.Nil(t, opts.IgnoreDefaultArgs)
}

func TestNewContextArgsToPlaywrightViewport(t *testing.T) {
	c := NewContextArgs{ContextArgs: DefaultContextArgs()}
	c.Viewport = &Size{Width: 1280, Height: 1100}
	c.DeviceScaleFactor = Float(1.0)
	c.Locale = "de-DE"
	c.StorageState = "/tmp/state.json"

	opts := c.ToPlaywright()

	require.NotNil(t, opts.Viewport)
	assert.Equal(t, 1280, opts.Viewport.Width)
	assert.Equal(t, 1100, opts.Viewport.Height)
	require.NotNil(t, opts.DeviceScaleFactor)
	assert.Equal(t, 1.0, *opts.DeviceScaleFactor)
	require.NotNil(t, opts.Locale)
	assert.Equal(t, "de-DE", *opts.Locale)
	require.NotNil(t, opts.StorageStatePath)
	assert.Equal(t, "/tmp/state.json", *opts.StorageStatePath)
}

func TestNewContextArgsToPlaywrightHarOnlyWithPath(t *testing.T) {
	c := NewContextArgs{ContextArgs: DefaultContextArgs()}
	opts := c.ToPlaywright()
	assert.Nil(t, opts.RecordHarPath)
	assert.Nil(t, opts.RecordHarContent, "HAR settings only apply once a path is set")

	c.RecordHarPath = "/tmp/session.har"
	opts = c.ToPlaywright()
	require.NotNil(t, opts.RecordHarPath)
	require.NotNil(t, opts.RecordHarContent)
	assert.Equal(t, "embed", string(*opts.RecordHarContent))
}

func TestNewContextArgsToPlaywrightServiceWorkerPolicy(t *testing.T) {
	c := NewContextArgs{ContextArgs: DefaultContextArgs()}
	opts := c.ToPlaywright()
	require.NotNil(t, opts.ServiceWorkers)
	assert.Equal(t, "allow", string(*opts.ServiceWorkers))

	c.ServiceWorkers = ServiceWorkersBlock
	opts = c.ToPlaywright()
	require.NotNil(t, opts.ServiceWorkers)
	assert.Equal(t, "block", string(*opts.ServiceWorkers))

	c.ServiceWorkers = ""
	opts = c.ToPlaywright()
	assert.Nil(t, opts.ServiceWorkers, "unset policy stays nil so the driver decides")
}

func TestProjectionsToPlaywrightEndToEnd(t *testing.T) {
	p, err := New(map[string]interface{}{
		"headless": true,
		"args":     []string{"--foo=1", "--foo=2"},
	})
	require.NoError(t, err)

	launch := p.LaunchArgs().ToPlaywright()
	assert.Contains(t, launch.Args, "--foo=2")
	assert.NotContains(t, launch.Args, "--foo=1")

	ctx := p.NewContextArgs().ToPlaywright()
	require.NotNil(t, ctx.ServiceWorkers)
	assert.Equal(t, "allow", string(*ctx.ServiceWorkers))

	_, persistent := p.LaunchPersistentContextArgs().ToPlaywright()
	require.NotNil(t, persistent.ServiceWorkers)
	assert.Equal(t, "allow", string(*persistent.ServiceWorkers))
	assert.Equal(t, launch.Args, persistent.Args)

	connect := p.ConnectArgs().ToPlaywright()
	require.NotNil(t, connect.Timeout)
	assert.Equal(t, 30000.0, *connect.Timeout)
}

func TestLaunchPersistentContextArgsToPlaywright(t *testing.T) {
	p, err := New(map[string]interface{}{
		"user_data_dir": "/tmp/profile-test",
		"headless":      true,
		"proxy":         map[string]interface{}{"server": "http://proxy:3128"},
	})
	require.NoError(t, err)

	userDataDir, opts := p.LaunchPersistentContextArgs().ToPlaywright()

	assert.Equal(t, "/tmp/profile-test", userDataDir)
	require.NotNil(t, opts.Headless)
	assert.True(t, *opts.Headless)
	require.NotNil(t, opts.Proxy)
	assert.Equal(t, "http://proxy:3128", opts.Proxy.Server)
	assert.Equal(t, p.BrowserArgs(), opts.Args)
}
