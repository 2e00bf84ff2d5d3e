// Package loop runs a fixed, ordered list of systems once per frame.
//
// A frame is strictly sequential: every system sees the same UpdateFrame,
// deferred commands run after the last system, and a halt requested by any
// system stops the scheduler for good once the frame completes.
//
// Systems share state through a Storage of singleton components. A system
// declares a Singleton[T] field and Scheduler.Register binds it to the
// scheduler's storage.
package loop
