package models

// All returns every persisted model in dependency order, for migration and codegen.
func All() []interface{} {
	return []interface{}{
		&Project{},
		&Tag{},
		&ProjectTag{},
		&Post{},
		&ContactMessage{},
	}
}
