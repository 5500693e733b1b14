package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps login latency tolerable for the development fake while
// staying above the bcrypt default.
const bcryptCost = 12

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored hash. Wrong
// passwords and malformed hashes both read as a mismatch.
func CheckPassword(hashed, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
