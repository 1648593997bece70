package main

import (
	"os"

	"github.com/arthur-debert/jsonstore/cmd/jsonstore"
)

func main() {
	rootCmd := jsonstore.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(jsonstore.HandleError(rootCmd, err))
	}
}
