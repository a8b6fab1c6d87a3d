package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
	}
}
