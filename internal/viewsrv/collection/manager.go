package collection

// Manager runs the collection view pipelines against the two upstream
// services. Both clients are injected so tests can substitute fakes.
// A Manager is stateless and safe for concurrent use.
type Manager struct {
	users   CollectionClient
	catalog CatalogClient
}

// NewManager creates a Manager using the given upstream clients.
func NewManager(users CollectionClient, catalog CatalogClient) *Manager {
	return &Manager{
		users:   users,
		catalog: catalog,
	}
}
