package repoargs

type CreateUser struct {
	FullName string
	Username string
	Email    string
	Password string
}
