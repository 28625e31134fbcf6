package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Prints the 4-byte selectors of the escrow contract's methods and errors,
// for cross-checking traces against the ABI in
// internal/infrastructure/blockchain.
func main() {
	sigs := []string{
		"deposit(address,uint256)",
		"payout(address,uint256)",
		"InsufficientBalance()",
		"EscrowUnderflow()",
		"Unauthorized()",
		"ZeroAmount()",
		"Panic(uint256)",
		"Error(string)",
	}

	for _, sig := range sigs {
		hash := crypto.Keccak256([]byte(sig))
		selector := hex.EncodeToString(hash[:4])
		fmt.Printf("%s: 0x%s\n", sig, selector)
	}
}
