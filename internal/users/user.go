package users

import (
	"codeberg.org/mutker/goresult/result"
)

// MinAge is the youngest age CreateUser accepts
const MinAge = 18

// CreateUser validates the input and builds a User. It does not persist it.
func CreateUser(firstname, lastname string, age int) result.Result[User] {
	if firstname == "" || lastname == "" {
		return result.FromError[User](ErrMissingName)
	}
	if age < MinAge {
		return result.FromError[User](ErrUnderage)
	}

	return result.FromValue(User{
		FirstName: firstname,
		LastName:  lastname,
		Age:       age,
	})
}

// seedUsers are inserted by Seed into an empty database
var seedUsers = []User{
	{ID: 1, FirstName: "John", LastName: "Doe", Age: 20},
	{ID: 2, FirstName: "Jane", LastName: "Doe", Age: 22},
	{ID: 3, FirstName: "John", LastName: "Smith", Age: 25},
}
