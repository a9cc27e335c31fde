package hud

import "sync"

// The process-wide shared controller is built lazily on first access from a
// registered provider and lives for the rest of the process. This is the
// only cross-instance state besides the fallback host below; independent
// controllers share nothing.
var (
	sharedOnce     sync.Once
	sharedInstance *Controller
	sharedProvider func() *Controller

	fallbackHost Host
)

// SetSharedProvider registers the constructor for the shared controller.
// Presentation backends call this during program setup, before anything
// calls Shared. A provider registered after the first Shared call has no
// effect.
func SetSharedProvider(fn func() *Controller) { sharedProvider = fn }

// Shared returns the process-wide default controller, constructing it on
// first access. It panics if no provider was registered: asking for a shared
// HUD before wiring a backend is a programming error.
func Shared() *Controller {
	sharedOnce.Do(func() {
		if sharedProvider == nil {
			panic("hud: Shared called before SetSharedProvider")
		}
		sharedInstance = sharedProvider()
	})
	return sharedInstance
}

// SetFallbackHost registers the process-wide default host used when neither
// Show nor the controller names a target.
func SetFallbackHost(h Host) { fallbackHost = h }

// FallbackHost returns the process-wide default host, or nil.
func FallbackHost() Host { return fallbackHost }
