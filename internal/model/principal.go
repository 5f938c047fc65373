package model

// Principal is the authenticated caller taken from a bearer token.
type Principal struct {
	Subject string
	Roles   []string
}
