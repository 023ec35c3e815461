// Package vary binds properties of host objects to candidate values that
// depend on an environment's size classification, and reapplies the matching
// value whenever that classification changes.
//
// # Classification
//
// An Environment reports Traits: a Classification (Unspecified, Compact or
// Regular) on each of two independent axes, horizontal and vertical.
//
// # Variations
//
// A Variation pairs one candidate value with a Condition. A Condition may
// require a classification on either axis; an axis left nil accepts anything,
// so a Condition with neither axis set is a default that always applies.
//
//	text := vary.ComparableProperty("text",
//	    func(l *Label) string { return l.Text },
//	    func(l *Label, v string) { l.Text = v },
//	)
//
//	compact, regular := vary.MakePair(label, text, vary.AxisHorizontal, "Hi", "Hello there")
//
// When a Variation matches it writes its value through the Property. When it
// does not match it writes nothing: the property keeps whatever was last
// applied.
//
// # Registry
//
// Each Environment owns a Registry, the ordered list of its Variations.
// Adding a Variation applies it at once if it matches. The Environment calls
// ReapplyAll whenever its traits change; there is no polling or subscription.
//
//	registry.AddVariations(compact, regular)
//	...
//	window.traits = vary.Traits{Horizontal: vary.Regular}
//	registry.ReapplyAll()
//
// AddCaptured is a shortcut that keeps the property's current value for the
// regular classification and layers a compact override on top:
//
//	vary.AddCaptured(registry, label, text, vary.AxisHorizontal, "Hi")
//
// # Concurrency
//
// Registries and Variations are synchronous and not safe for concurrent use.
// Every operation completes before returning.
//
// # Relay
//
// Relay is an Environment fed by a Watcher that delivers traits snapshots
// produced elsewhere: a file via FileWatcher, a Redis key via pkg/redis, or
// any channel via ChannelWatcher. It decodes each snapshot with a Codec,
// validates it, debounces bursts and reapplies its Registry under a lock
// shared with Relay.Update.
//
// # Observability
//
// Every registration, write, elided write and unbound apply is emitted as a
// capitan signal (see signals.go and fields.go).
package vary
