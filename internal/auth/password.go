package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed cost factor for password hashing.
const bcryptCost = 10

// HashPassword hashes password concatenated with the application-wide salt.
// bcrypt embeds a per-call random salt, so two hashes of the same password
// differ.
func HashPassword(password, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password+salt matches the stored hash.
// A mismatch or malformed hash is false, never an error.
func CheckPassword(password, hash, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+salt)) == nil
}
