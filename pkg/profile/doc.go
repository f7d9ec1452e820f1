// Package profile resolves a single, internally-consistent launch
// configuration for a controlled Chromium-family browser from layered user
// options, platform defaults, and runtime environment signals.
//
// # Architecture
//
// The package is built around three pieces:
//
//  1. Profile: a flat record unifying connect, launch, context, and
//     persistent-context parameters plus automation extensions. Narrower
//     records for individual driver calls are computed from it by
//     field-subset copy, never by subtyping.
//  2. Argument composition: BrowserArgs merges the static flag catalogs with
//     user overrides into an order-stable, duplicate-free CLI flag list with
//     last-write-wins semantics per flag key.
//  3. Display resolution: DetectDisplayConfiguration queries the physical
//     display once per process and derives the mutually exclusive
//     windowed-vs-headless geometry, keeping screen, viewport, and device
//     scale factor consistent to avoid trivial fingerprinting.
//
// # Lifecycle
//
// A Profile is built once per automation session and then treated as
// read-only:
//
//	p, err := profile.New(map[string]interface{}{
//	    "headless":         true,
//	    "disable_security": true,
//	})
//	if err != nil { ... }
//	p.DetectDisplayConfiguration()
//	if err := p.PrepareUserDataDir(); err != nil { ... }
//
//	userDataDir, opts := p.LaunchPersistentContextArgs().ToPlaywright()
//	ctx, err := pw.Chromium.LaunchPersistentContext(userDataDir, opts)
//
// PrepareUserDataDir and DetectDisplayConfiguration are the only mutators
// after construction; both are explicit, idempotent, and caller-invoked.
// A Profile must not be shared across goroutines while being mutated.
//
// # Validation
//
// Construction is all-or-nothing. Unknown option keys are ignored for
// forward compatibility, but a malformed value (bad URL, out-of-range
// float, flag not starting with "--") or a cross-field conflict such as
// headless combined with devtools aborts construction with a
// *ValidationError naming the field and value.
package profile
