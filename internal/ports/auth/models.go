package auth

// Claims representa la identidad extraída del token.
// UserID es el falconer_id del caller.
type Claims struct {
	UserID string
	Email  string
}
