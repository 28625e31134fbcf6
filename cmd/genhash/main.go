package main

import (
	"fmt"
	"os"

	"fundvault.backend/pkg/crypto"
)

// Prints a bcrypt hash for the given password. Used to seed accounts directly
// in the database.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
