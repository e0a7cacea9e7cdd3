package main

import (
	"fmt"
	"os"

	"trackexpense/cmd/expense"
	"trackexpense/cmd/receipt"
	"trackexpense/cmd/report"
	"trackexpense/cmd/root"
	"trackexpense/internal/config"
)

func init() {
	// Variables from .env must be visible before viper reads the environment.
	_, _ = config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(expense.Cmd)
	root.Cmd.AddCommand(receipt.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
