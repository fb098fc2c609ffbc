package people_test

import (
	"testing"

	"github.com/Invicton-Labs/go-search/comparison"
	"github.com/Invicton-Labs/go-search/people"
	"github.com/stretchr/testify/assert"
)

var _ comparison.Equatable[people.Person] = people.Person{}

func TestPersonEquals(t *testing.T) {
	joe := people.New(180, "Joe Patterson", "M")
	twin := people.New(180, "Joe Patterson", "M")

	assert.True(t, joe.Equals(twin))
	assert.True(t, twin.Equals(joe))
	assert.True(t, joe.Equals(joe))
	assert.Equal(t, joe == twin, joe.Equals(twin))

	var fixtures = []struct {
		Name  string
		Other people.Person
	}{
		{"weight", people.New(181, "Joe Patterson", "M")},
		{"name", people.New(180, "Jeb Patterson", "M")},
		{"sex", people.New(180, "Joe Patterson", "F")},
	}
	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			assert.False(t, joe.Equals(f.Other))
			assert.False(t, f.Other.Equals(joe))
		})
	}
}

func TestPersonNotEqual(t *testing.T) {
	joe := people.New(180, "Joe Patterson", "M")
	pam := people.New(120, "Pam Patterson", "F")
	assert.False(t, comparison.Equal(joe, pam))
}
