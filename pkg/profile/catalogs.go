package profile

import (
	"os"
	"strings"
	"sync"
)

// DebugPort is the remote-debugging port used by the launcher layer. It is
// deliberately not Chrome's usual 9222 so that controlled browsers do not
// collide with developer tooling attached to locally-running browsers.
const DebugPort = 9242

// DisabledComponents lists Chromium feature-flag names turned off for
// automation. The set combines the features Playwright disables for test
// stability with features that cause background network traffic, rendering
// pauses, or fingerprintable behavior during automated sessions.
var DisabledComponents = []string{
	"AcceptCHFrame",
	"AutoExpandDetailsElement",
	"AvoidUnnecessaryBeforeUnloadCheckSync",
	"CertificateTransparencyComponentUpdater",
	"DestroyProfileOnBrowserClose",
	"DialMediaRouteProvider",
	"ExtensionManifestV2Disabled",
	"GlobalMediaControls",
	"HttpsUpgrades",
	"ImprovedCookieControls",
	"LazyFrameLoading",
	"LensOverlay",
	"MediaRouter",
	"PaintHolding",
	"ThirdPartyStoragePartitioning",
	"Translate",
	"AutomationControlled",
	"OptimizationHints",
	"ProcessPerSiteUpToMainFrameThreshold",
	"InterestFeedContentSuggestions",
	// Chrome stops rendering tabs occluded by foreground windows unless this
	// is disabled.
	"CalculateNativeWinOcclusion",
	"HeavyAdPrivacyMitigations",
	"PrivacySandboxSettings4",
	"AutofillServerCommunication",
	"CrashReporting",
	"OverscrollHistoryNavigation",
	"InfiniteSessionRestore",
	"ExtensionDisableUnsupportedDeveloper",
	"OptimizationGuideModelDownloading",
	"OptimizationHintsFetching",
	"OptimizationTargetPrediction",
}

// HeadlessArgs are appended when the browser runs without a visible window.
var HeadlessArgs = []string{
	"--headless=new",
}

// ContainerArgs are appended when running inside a container, where the
// kernel-level sandbox and shared-memory defaults are unavailable.
var ContainerArgs = []string{
	"--no-sandbox",
	"--disable-gpu-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--no-xshm",
	"--no-zygote",
	"--single-process",
}

// DisableSecurityArgs turn off web security enforcement. Only applied when a
// profile explicitly opts in.
var DisableSecurityArgs = []string{
	"--disable-web-security",
	"--disable-site-isolation-trials",
	"--disable-features=IsolateOrigins,site-per-process",
	"--allow-running-insecure-content",
	"--ignore-certificate-errors",
	"--ignore-ssl-errors",
	"--ignore-certificate-errors-spki-list",
}

// DeterministicRenderingArgs make page rendering reproducible across runs at
// the cost of realism (fixed JS random seed, forced scale factor and color
// profile, no font hinting).
var DeterministicRenderingArgs = []string{
	"--deterministic-mode",
	"--js-flags=--random-seed=1157259159",
	"--force-device-scale-factor=2",
	"--enable-webgl",
	"--font-render-hinting=none",
	"--force-color-profile=srgb",
}

// DefaultArgs is the baseline flag catalog applied to every launch unless the
// profile suppresses it. It mirrors the switches Playwright applies to
// Chromium plus flags that silence first-run UI, background networking, and
// automation banners.
var DefaultArgs = append([]string{
	"--disable-field-trial-config",
	"--disable-background-networking",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-back-forward-cache",
	"--disable-breakpad",
	"--disable-client-side-phishing-detection",
	"--disable-component-extensions-with-background-pages",
	"--disable-component-update",
	"--no-default-browser-check",
	"--disable-dev-shm-usage",
	"--allow-pre-commit-input",
	"--disable-hang-monitor",
	"--disable-ipc-flooding-protection",
	"--disable-popup-blocking",
	"--disable-prompt-on-repost",
	"--disable-renderer-backgrounding",
	"--metrics-recording-only",
	"--no-first-run",
	"--password-store=basic",
	"--use-mock-keychain",
	"--no-service-autorun",
	"--export-tagged-pdf",
	"--disable-search-engine-choice-screen",
	"--unsafely-disable-devtools-self-xss-warnings",
	"--enable-features=NetworkService,NetworkServiceInProcess",
	"--enable-network-information-downlink-max",
	"--test-type=gpu",
	"--disable-sync",
	"--allow-legacy-extension-manifests",
	"--disable-blink-features=AutomationControlled",
	"--install-autogenerated-theme=0,0,0",
	"--hide-scrollbars",
	"--log-level=2",
	"--disable-focus-on-load",
	"--disable-window-activation",
	"--generate-pdf-document-outline",
	"--no-pings",
	"--ash-no-nudges",
	"--disable-infobars",
	`--simulate-outdated-no-au="Tue, 31 Dec 2099 23:59:59 GMT"`,
	"--hide-crash-restore-bubble",
	"--suppress-message-center-popups",
	"--disable-domain-reliability",
	"--disable-datasaver-prompt",
	"--disable-speech-synthesis-api",
	"--disable-speech-api",
	"--disable-print-preview",
	"--safebrowsing-disable-auto-update",
	"--disable-external-intent-requests",
	"--disable-desktop-notifications",
	"--noerrdialogs",
	"--silent-debugger-extension-api",
}, "--disable-features="+strings.Join(DisabledComponents, ","))

var (
	inContainer     bool
	inContainerOnce sync.Once
)

// RunningInContainer reports whether the process appears to run inside a
// container. The IN_DOCKER environment variable is read once per process;
// any value whose first character is t, y, or 1 (case-insensitive) counts
// as true.
func RunningInContainer() bool {
	inContainerOnce.Do(func() {
		inContainer = isTruthy(os.Getenv("IN_DOCKER"))
	})
	return inContainer
}

func isTruthy(value string) bool {
	if value == "" {
		return false
	}
	switch strings.ToLower(value)[0] {
	case 't', 'y', '1':
		return true
	}
	return false
}
