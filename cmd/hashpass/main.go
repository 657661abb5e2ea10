// Command hashpass prints the PASSCODE_HASH value for an owner passcode.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cuotas/internal/auth"
	"cuotas/internal/logger"
)

func main() {
	logger.Init()

	passcode := ""
	if len(os.Args) > 1 {
		passcode = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Fatalf("Failed to read passcode: %v", err)
		}
		passcode = strings.TrimSpace(line)
	}
	if passcode == "" {
		logger.Fatal("Passcode is empty")
	}

	hash, err := auth.HashPasscode(passcode)
	if err != nil {
		logger.Fatalf("Failed to hash passcode: %v", err)
	}
	fmt.Println(hash)
}
