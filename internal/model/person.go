package model

import "fmt"

// AdultAge is the age from which a Person counts as an adult.
const AdultAge = 18

// Person is a named individual with an age.
// Fields are set once by NewPerson; nothing in this package mutates them.
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewPerson stores both fields as given. Neither is validated.
func NewPerson(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// Info formats the person as "Name: <name>, Age: <age>".
func (p Person) Info() string {
	return fmt.Sprintf("Name: %s, Age: %d", p.Name, p.Age)
}

// IsAdult is computed from Age on every call.
func (p Person) IsAdult() bool {
	return p.Age >= AdultAge
}

func (p Person) String() string { return p.Info() }
