package ports

// ConfigInitializer writes a starter configuration into a directory and
// returns the path of the config file.
type ConfigInitializer interface {
	Init(root string, force bool) (string, error)
}
