package profile

import (
	"github.com/playwright-community/playwright-go"
)

// Converters from the typed parameter records to the playwright-go option
// structs, so projections can be handed straight to BrowserType calls.
// Zero-valued optional fields stay nil so the driver applies its own
// defaults.

func (s *ProxySettings) toPlaywright() *playwright.Proxy {
	if s == nil {
		return nil
	}
	proxy := &playwright.Proxy{Server: s.Server}
	if s.Bypass != "" {
		proxy.Bypass = playwright.String(s.Bypass)
	}
	if s.Username != "" {
		proxy.Username = playwright.String(s.Username)
	}
	if s.Password != "" {
		proxy.Password = playwright.String(s.Password)
	}
	return proxy
}

func (s *Size) toPlaywright() *playwright.Size {
	if s == nil {
		return nil
	}
	return &playwright.Size{Width: s.Width, Height: s.Height}
}

// ToPlaywright converts the record for BrowserType.ConnectOverCDP.
func (c ConnectArgs) ToPlaywright() playwright.BrowserTypeConnectOverCDPOptions {
	opts := playwright.BrowserTypeConnectOverCDPOptions{
		SlowMo:  playwright.Float(c.SlowMo),
		Timeout: playwright.Float(c.Timeout),
	}
	if len(c.Headers) > 0 {
		opts.Headers = c.Headers
	}
	return opts
}

// ToPlaywright converts the record for BrowserType.Launch.
func (l LaunchArgs) ToPlaywright() playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Args:            l.Args,
		ChromiumSandbox: playwright.Bool(l.ChromiumSandbox),
		Devtools:        playwright.Bool(l.Devtools),
		HandleSIGHUP:    playwright.Bool(l.HandleSIGHUP),
		HandleSIGINT:    playwright.Bool(l.HandleSIGINT),
		HandleSIGTERM:   playwright.Bool(l.HandleSIGTERM),
		SlowMo:          playwright.Float(l.SlowMo),
		Timeout:         playwright.Float(l.Timeout),
		Proxy:           l.Proxy.toPlaywright(),
	}
	if l.Channel != "" {
		opts.Channel = playwright.String(string(l.Channel))
	}
	if l.ExecutablePath != "" {
		opts.ExecutablePath = playwright.String(l.ExecutablePath)
	}
	if l.Headless != nil {
		opts.Headless = playwright.Bool(*l.Headless)
	}
	if l.DownloadsPath != "" {
		opts.DownloadsPath = playwright.String(l.DownloadsPath)
	}
	if l.TracesDir != "" {
		opts.TracesDir = playwright.String(l.TracesDir)
	}
	if l.IgnoreDefaultArgs.All {
		opts.IgnoreAllDefaultArgs = playwright.Bool(true)
	} else if len(l.IgnoreDefaultArgs.Args) > 0 {
		opts.IgnoreDefaultArgs = l.IgnoreDefaultArgs.Args
	}
	return opts
}

// ToPlaywright converts the record for Browser.NewContext.
func (c NewContextArgs) ToPlaywright() playwright.BrowserNewContextOptions {
	opts := playwright.BrowserNewContextOptions{
		AcceptDownloads:   playwright.Bool(c.AcceptDownloads),
		Offline:           playwright.Bool(c.Offline),
		StrictSelectors:   playwright.Bool(c.StrictSelectors),
		BypassCSP:         playwright.Bool(c.BypassCSP),
		IgnoreHttpsErrors: playwright.Bool(c.IgnoreHTTPSErrors),
		JavaScriptEnabled: playwright.Bool(c.JavaScriptEnabled),
		IsMobile:          playwright.Bool(c.IsMobile),
		HasTouch:          playwright.Bool(c.HasTouch),
		Permissions:       c.Permissions,
		Proxy:             c.Proxy.toPlaywright(),
		Screen:            c.Screen.toPlaywright(),
		Viewport:          c.Viewport.toPlaywright(),
		NoViewport:        c.NoViewport,
		DeviceScaleFactor: c.DeviceScaleFactor,
	}
	if len(c.ExtraHTTPHeaders) > 0 {
		opts.ExtraHttpHeaders = c.ExtraHTTPHeaders
	}
	if c.HTTPCredentials != nil {
		opts.HttpCredentials = &playwright.HttpCredentials{
			Username: c.HTTPCredentials.Username,
			Password: c.HTTPCredentials.Password,
		}
	}
	if c.BaseURL != "" {
		opts.BaseURL = playwright.String(c.BaseURL)
	}
	if c.UserAgent != "" {
		opts.UserAgent = playwright.String(c.UserAgent)
	}
	if c.Locale != "" {
		opts.Locale = playwright.String(c.Locale)
	}
	if c.TimezoneID != "" {
		opts.TimezoneId = playwright.String(c.TimezoneID)
	}
	if c.Geolocation != nil {
		opts.Geolocation = &playwright.Geolocation{
			Latitude:  c.Geolocation.Latitude,
			Longitude: c.Geolocation.Longitude,
			Accuracy:  c.Geolocation.Accuracy,
		}
	}
	if c.ColorScheme != "" {
		scheme := playwright.ColorScheme(c.ColorScheme)
		opts.ColorScheme = &scheme
	}
	if c.ReducedMotion != "" {
		motion := playwright.ReducedMotion(c.ReducedMotion)
		opts.ReducedMotion = &motion
	}
	if c.ForcedColors != "" {
		colors := playwright.ForcedColors(c.ForcedColors)
		opts.ForcedColors = &colors
	}
	if c.ServiceWorkers != "" {
		policy := playwright.ServiceWorkerPolicy(c.ServiceWorkers)
		opts.ServiceWorkers = &policy
	}
	if c.RecordHarPath != "" {
		opts.RecordHarPath = playwright.String(c.RecordHarPath)
		if c.RecordHarContent != "" {
			content := playwright.HarContentPolicy(c.RecordHarContent)
			opts.RecordHarContent = &content
		}
		if c.RecordHarMode != "" {
			mode := playwright.HarMode(c.RecordHarMode)
			opts.RecordHarMode = &mode
		}
		opts.RecordHarOmitContent = playwright.Bool(c.RecordHarOmitContent)
		if c.RecordHarURLFilter != "" {
			opts.RecordHarURLFilter = c.RecordHarURLFilter
		}
	}
	if c.RecordVideoDir != "" {
		opts.RecordVideo = &playwright.RecordVideo{
			Dir:  c.RecordVideoDir,
			Size: c.RecordVideoSize.toPlaywright(),
		}
	}
	if c.StorageState != "" {
		opts.StorageStatePath = playwright.String(c.StorageState)
	}
	return opts
}

// ToPlaywright converts the record for BrowserType.LaunchPersistentContext.
// The user data dir is a positional argument to that call and is returned
// alongside the options. When both launch and context declare a proxy, the
// launch proxy wins.
func (a LaunchPersistentContextArgs) ToPlaywright() (string, playwright.BrowserTypeLaunchPersistentContextOptions) {
	launch := a.Launch
	ctx := a.Context

	proxy := launch.Proxy
	if proxy == nil {
		proxy = ctx.Proxy
	}

	opts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Args:              launch.Args,
		ChromiumSandbox:   playwright.Bool(launch.ChromiumSandbox),
		Devtools:          playwright.Bool(launch.Devtools),
		HandleSIGHUP:      playwright.Bool(launch.HandleSIGHUP),
		HandleSIGINT:      playwright.Bool(launch.HandleSIGINT),
		HandleSIGTERM:     playwright.Bool(launch.HandleSIGTERM),
		SlowMo:            playwright.Float(launch.SlowMo),
		Timeout:           playwright.Float(launch.Timeout),
		Proxy:             proxy.toPlaywright(),
		AcceptDownloads:   playwright.Bool(ctx.AcceptDownloads),
		Offline:           playwright.Bool(ctx.Offline),
		StrictSelectors:   playwright.Bool(ctx.StrictSelectors),
		BypassCSP:         playwright.Bool(ctx.BypassCSP),
		IgnoreHttpsErrors: playwright.Bool(ctx.IgnoreHTTPSErrors),
		JavaScriptEnabled: playwright.Bool(ctx.JavaScriptEnabled),
		IsMobile:          playwright.Bool(ctx.IsMobile),
		HasTouch:          playwright.Bool(ctx.HasTouch),
		Permissions:       ctx.Permissions,
		Screen:            ctx.Screen.toPlaywright(),
		Viewport:          ctx.Viewport.toPlaywright(),
		NoViewport:        ctx.NoViewport,
		DeviceScaleFactor: ctx.DeviceScaleFactor,
	}
	if launch.Channel != "" {
		opts.Channel = playwright.String(string(launch.Channel))
	}
	if launch.ExecutablePath != "" {
		opts.ExecutablePath = playwright.String(launch.ExecutablePath)
	}
	if launch.Headless != nil {
		opts.Headless = playwright.Bool(*launch.Headless)
	}
	if launch.DownloadsPath != "" {
		opts.DownloadsPath = playwright.String(launch.DownloadsPath)
	}
	if launch.TracesDir != "" {
		opts.TracesDir = playwright.String(launch.TracesDir)
	}
	if launch.IgnoreDefaultArgs.All {
		opts.IgnoreAllDefaultArgs = playwright.Bool(true)
	} else if len(launch.IgnoreDefaultArgs.Args) > 0 {
		opts.IgnoreDefaultArgs = launch.IgnoreDefaultArgs.Args
	}
	if len(ctx.ExtraHTTPHeaders) > 0 {
		opts.ExtraHttpHeaders = ctx.ExtraHTTPHeaders
	}
	if ctx.HTTPCredentials != nil {
		opts.HttpCredentials = &playwright.HttpCredentials{
			Username: ctx.HTTPCredentials.Username,
			Password: ctx.HTTPCredentials.Password,
		}
	}
	if ctx.BaseURL != "" {
		opts.BaseURL = playwright.String(ctx.BaseURL)
	}
	if ctx.UserAgent != "" {
		opts.UserAgent = playwright.String(ctx.UserAgent)
	}
	if ctx.Locale != "" {
		opts.Locale = playwright.String(ctx.Locale)
	}
	if ctx.TimezoneID != "" {
		opts.TimezoneId = playwright.String(ctx.TimezoneID)
	}
	if ctx.Geolocation != nil {
		opts.Geolocation = &playwright.Geolocation{
			Latitude:  ctx.Geolocation.Latitude,
			Longitude: ctx.Geolocation.Longitude,
			Accuracy:  ctx.Geolocation.Accuracy,
		}
	}
	if ctx.ColorScheme != "" {
		scheme := playwright.ColorScheme(ctx.ColorScheme)
		opts.ColorScheme = &scheme
	}
	if ctx.ReducedMotion != "" {
		motion := playwright.ReducedMotion(ctx.ReducedMotion)
		opts.ReducedMotion = &motion
	}
	if ctx.ForcedColors != "" {
		colors := playwright.ForcedColors(ctx.ForcedColors)
		opts.ForcedColors = &colors
	}
	if ctx.ServiceWorkers != "" {
		policy := playwright.ServiceWorkerPolicy(ctx.ServiceWorkers)
		opts.ServiceWorkers = &policy
	}
	if ctx.RecordHarPath != "" {
		opts.RecordHarPath = playwright.String(ctx.RecordHarPath)
		if ctx.RecordHarContent != "" {
			content := playwright.HarContentPolicy(ctx.RecordHarContent)
			opts.RecordHarContent = &content
		}
		if ctx.RecordHarMode != "" {
			mode := playwright.HarMode(ctx.RecordHarMode)
			opts.RecordHarMode = &mode
		}
		opts.RecordHarOmitContent = playwright.Bool(ctx.RecordHarOmitContent)
		if ctx.RecordHarURLFilter != "" {
			opts.RecordHarURLFilter = ctx.RecordHarURLFilter
		}
	}
	if ctx.RecordVideoDir != "" {
		opts.RecordVideo = &playwright.RecordVideo{
			Dir:  ctx.RecordVideoDir,
			Size: ctx.RecordVideoSize.toPlaywright(),
		}
	}
	return a.UserDataDir, opts
}
