package people

// Person is a record whose equality is defined over every field. Adding a
// field here must also add it to Equals.
type Person struct {
	Weight int    `json:"weight"`
	Name   string `json:"name"`
	Sex    string `json:"sex"`
}

func New(weight int, name string, sex string) Person {
	return Person{
		Weight: weight,
		Name:   name,
		Sex:    sex,
	}
}

// Equals reports whether all fields of p and other match.
func (p Person) Equals(other Person) bool {
	return p.Weight == other.Weight &&
		p.Name == other.Name &&
		p.Sex == other.Sex
}
