package model

// Person is the user record returned by the demo services.
// It is a plain value: construct it once and pass it by value, never mutate it.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewPerson builds a Person from its two names.
func NewPerson(firstName, lastName string) Person {
	return Person{FirstName: firstName, LastName: lastName}
}

// DemoUser returns the fixed user served by GET /user.
func DemoUser() Person {
	return NewPerson("Henry", "Xiloj")
}

// Valid reports whether both names are present.
func (p Person) Valid() bool {
	return p.FirstName != "" && p.LastName != ""
}
