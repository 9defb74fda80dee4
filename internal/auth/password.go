package auth

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

// HashPassword derives a salted bcrypt digest from a plaintext password.
// Each call produces a different digest for the same input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the digest was produced from the plaintext.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
