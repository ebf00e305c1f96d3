package main

import (
	"fmt"
	"os"

	issuescmd "fjacquet/issuelog/cmd/issues"
	"fjacquet/issuelog/cmd/root"
	"fjacquet/issuelog/cmd/smoke"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(smoke.Cmd)
	root.Cmd.AddCommand(issuescmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
