package main

import (
	"doctor-directory/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
}
