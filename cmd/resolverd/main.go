package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/signum-network/signum-did-resolver-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.WithError(err).Error("resolverd failed")
		os.Exit(1)
	}
}
