package store

// HealthStore reports whether the backing database is reachable
type HealthStore interface {
	// CheckConnectivity returns an error when the database can't be queried
	CheckConnectivity() error
}
