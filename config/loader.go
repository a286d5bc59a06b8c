package config

// Loader reads configuration into a target and reports changes.
type Loader interface {
	// Load loads the configuration into the target
	Load(target any) error

	// Watch invokes callback whenever the source changes
	Watch(callback func()) error
}
