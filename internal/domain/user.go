package domain

// User represents a learner account. Field names match the persisted JSON
// document exactly; existing data files must round-trip unchanged.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Points    int      `json:"points"`
	Completed []string `json:"completed"`
}

// HasCompleted reports whether the user has already completed the material.
func (u *User) HasCompleted(materialID string) bool {
	for _, id := range u.Completed {
		if id == materialID {
			return true
		}
	}
	return false
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) (*User, error)
	RecordCompletion(userID, materialID string) (*User, error)
}
