package domain

// Material represents a single learning material. Materials are read-only;
// nothing in the backend mutates them.
type Material struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// MaterialRepository defines the interface for material queries
type MaterialRepository interface {
	GetAll() ([]*Material, error)
	Search(query string) ([]*Material, error)
	GetByID(id string) (*Material, error)
}
