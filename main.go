package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/heathj/minievent/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
