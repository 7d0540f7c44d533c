package domain

// Dataset is the entire persisted state: one JSON document holding every user
// and every material. It is read in full and written in full on each
// mutation; there is no partial update format.
type Dataset struct {
	Users     []*User     `json:"users"`
	Materials []*Material `json:"materials"`
}

// FindUserByID returns the user with the given id, or nil.
func (d *Dataset) FindUserByID(id string) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email, or nil. Equality is
// on the full string, case-sensitive.
func (d *Dataset) FindUserByEmail(email string) *User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// FindMaterial returns the material with the given id, or nil.
func (d *Dataset) FindMaterial(id string) *Material {
	for _, m := range d.Materials {
		if m.ID == id {
			return m
		}
	}
	return nil
}
