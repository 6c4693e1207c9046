// Package workers runs the background workers of the client process.
// Workers are long-lived: Run starts them and returns, and they keep
// their own goroutines until the process exits or Stop is called on
// those that support it.
package workers

// Worker is a background task that can be started. Run must not block;
// implementations spawn their own goroutines.
type Worker interface {
	Run()
}
